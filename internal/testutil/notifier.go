package testutil

import (
	"sync"

	"github.com/hy4ri/todo-tui/internal/notify"
)

// Notification is one recorded notify call.
type Notification struct {
	Message  string
	Severity notify.Severity
}

// RecordingNotifier records every notification it receives.
type RecordingNotifier struct {
	mu   sync.Mutex
	sent []Notification
}

// Notify implements notify.Notifier.
func (r *RecordingNotifier) Notify(message string, severity notify.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, Notification{Message: message, Severity: severity})
}

// Sent returns the recorded notifications in order.
func (r *RecordingNotifier) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}
