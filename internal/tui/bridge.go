package tui

import (
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/deckshow/internal/events"
)

// ErrNotRunning is returned by Bridge.SendRemote before the program starts
// or after it stops.
var ErrNotRunning = errors.New("terminal host is not running")

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so other goroutines can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe). It reports
// false when no program is set.
func (r *programRef) Send(msg tea.Msg) bool {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p == nil {
		return false
	}
	p.Send(msg)
	return true
}

// RemoteMsg carries a remote control message onto the update goroutine.
type RemoteMsg events.RemoteMessage

// Bridge hands messages from other goroutines to the running program.
type Bridge struct {
	ref *programRef
}

// NewBridge returns a bridge with no program attached.
func NewBridge() *Bridge { return &Bridge{ref: &programRef{}} }

// SendRemote queues m for the deck. It is safe for concurrent use and
// matches server.RemoteSender.
func (b *Bridge) SendRemote(m events.RemoteMessage) error {
	if !b.ref.Send(RemoteMsg(m)) {
		return ErrNotRunning
	}
	return nil
}
