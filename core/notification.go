package core

import "github.com/google/uuid"

// Notification is an immutable event value constructed fresh per Post. It is
// delivered to matching observers throughout the poster's context-tree and is
// not retained by the system afterwards. Origin is a non-owning reference to
// the posting context.
type Notification struct {
	ID      string
	Name    NotificationName
	Origin  *Context
	Payload any
}

// PayloadAs asserts the notification payload to T. It returns the zero value
// and false when the payload is absent or of a different type.
func PayloadAs[T any](n Notification) (T, bool) {
	v, ok := n.Payload.(T)
	return v, ok
}

// NewID generates a unique identifier for contexts and notifications.
//
// Returns a string representation of a new UUID.
func NewID() string { return uuid.NewString() }

func newNotification(name NotificationName, origin *Context, payload any) Notification {
	return Notification{ID: NewID(), Name: name, Origin: origin, Payload: payload}
}
