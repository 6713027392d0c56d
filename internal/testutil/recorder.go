package testutil

import "github.com/hupe1980/contexture/core"

// NotificationRecorder collects every notification delivered to it, in
// delivery order. Use Deliver as the observer callback.
type NotificationRecorder struct {
	Seen []core.Notification
	// Err, when non-nil, is returned from every delivery attempt after
	// recording; used to exercise the recoverable delivery-error path.
	Err error
}

// Deliver records the notification and returns the scripted error (if any).
func (r *NotificationRecorder) Deliver(n core.Notification) error {
	r.Seen = append(r.Seen, n)
	return r.Err
}

// Count returns the number of recorded notifications.
func (r *NotificationRecorder) Count() int { return len(r.Seen) }

// Payloads returns the recorded payloads in delivery order.
func (r *NotificationRecorder) Payloads() []any {
	out := make([]any, 0, len(r.Seen))
	for _, n := range r.Seen {
		out = append(out, n.Payload)
	}
	return out
}
