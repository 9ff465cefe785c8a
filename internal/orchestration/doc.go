// Package orchestration composes the presentation engine. It binds a
// container on a host surface, forwards raw host input onto the event bus,
// and reacts to semantic commands by driving the mode machine, the slide
// view lifecycle and the scaler. Every collaborator outside the core (the
// host, the deck authority, widgets, printing, full-screen capabilities) is
// consumed through the interfaces in this package.
package orchestration
