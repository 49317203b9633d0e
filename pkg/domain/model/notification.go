package model

import "time"

// Notification is the single transient message slot. Version increases on
// every show and hide.
type Notification struct {
	Message string
	Version uint64
	ShownAt time.Time
}

// Visible reports whether a message is currently shown
func (n Notification) Visible() bool {
	return n.Message != ""
}
