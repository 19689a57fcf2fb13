package notify

import "time"

const (
	// DefaultToastDuration is how long a toast stays on screen.
	DefaultToastDuration = 5 * time.Second

	// DefaultMaxToasts caps how many toasts are shown at once.
	DefaultMaxToasts = 3
)

// Toast is a single on-screen notification.
type Toast struct {
	Message  string
	Severity Severity
	Expires  time.Time
}

// Toasts keeps the most recent notifications for the renderer.
// It is owned by the UI loop and is not safe for concurrent use.
type Toasts struct {
	items    []Toast
	duration time.Duration
	max      int
	now      func() time.Time
}

// NewToasts creates a toast stack. Non-positive arguments fall back to defaults.
func NewToasts(duration time.Duration, max int) *Toasts {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	if max <= 0 {
		max = DefaultMaxToasts
	}
	return &Toasts{
		duration: duration,
		max:      max,
		now:      time.Now,
	}
}

// SetClock replaces the time source (useful for testing).
func (t *Toasts) SetClock(now func() time.Time) {
	t.now = now
}

// Notify implements Notifier.
func (t *Toasts) Notify(message string, severity Severity) {
	now := t.now()
	t.prune(now)
	t.items = append(t.items, Toast{
		Message:  message,
		Severity: severity,
		Expires:  now.Add(t.duration),
	})
	if len(t.items) > t.max {
		t.items = t.items[len(t.items)-t.max:]
	}
}

// Visible returns the unexpired toasts, oldest first.
func (t *Toasts) Visible() []Toast {
	now := t.now()
	visible := make([]Toast, 0, len(t.items))
	for _, toast := range t.items {
		if now.Before(toast.Expires) {
			visible = append(visible, toast)
		}
	}
	return visible
}

// Dismiss removes every toast.
func (t *Toasts) Dismiss() {
	t.items = nil
}

func (t *Toasts) prune(now time.Time) {
	kept := t.items[:0]
	for _, toast := range t.items {
		if now.Before(toast.Expires) {
			kept = append(kept, toast)
		}
	}
	t.items = kept
}
