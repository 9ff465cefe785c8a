// Package view manages the per-slide view lifecycle.
//
// A SlideView wraps one slide in a set of surface regions and tracks its
// display state. The Manager rebuilds every view whenever the deck changes,
// shows and hides views on request, and derives the before/after state of
// every other view from the shown index. NotesView mirrors the notes of the
// shown slide into the notes area.
package view
