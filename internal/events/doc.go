// Package events implements the publish/subscribe bus shared by the
// presentation engine, the deck authority, the command mapping and the
// widgets. Components never call each other directly; they emit and
// subscribe to named events on a Bus.
package events
