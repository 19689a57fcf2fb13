package notify

import (
	"log/slog"

	"github.com/gen2brain/beeep"
)

// Desktop sends notifications through the operating system's notification daemon.
type Desktop struct {
	Title  string
	Logger *slog.Logger

	// send is swapped out in tests.
	send func(title, message string) error
}

// NewDesktop creates a desktop notifier that titles every notification with title.
func NewDesktop(title string, logger *slog.Logger) *Desktop {
	if logger == nil {
		logger = slog.Default()
	}
	return &Desktop{
		Title:  title,
		Logger: logger,
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Notify implements Notifier. Only errors reach the desktop; the delivery runs
// in its own goroutine so a slow notification daemon never stalls the UI.
func (d *Desktop) Notify(message string, severity Severity) {
	if severity != SeverityError {
		return
	}
	go func() {
		if err := d.send(d.Title, message); err != nil {
			d.Logger.Warn("failed to send desktop notification", "err", err)
		}
	}()
}
