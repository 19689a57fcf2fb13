// Package notify implements the "tell the user something went wrong" capability.
//
// The controller only sees the Notifier interface. Delivery is fire-and-forget:
// implementations must not block the caller and report nothing back.
package notify

// Severity classifies a notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Notifier delivers a message to the user.
type Notifier interface {
	Notify(message string, severity Severity)
}

// Multi fans a notification out to every notifier in order.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(message string, severity Severity) {
	for _, n := range m {
		if n != nil {
			n.Notify(message, severity)
		}
	}
}

// Func adapts a plain function to the Notifier interface.
type Func func(message string, severity Severity)

// Notify implements Notifier.
func (f Func) Notify(message string, severity Severity) {
	f(message, severity)
}
