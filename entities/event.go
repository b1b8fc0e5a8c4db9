package entities

import "time"

const (
	ResourceBlog = "blog"
	ResourceUser = "user"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent describes a committed write, pushed to live feed subscribers.
type ChangeEvent struct {
	Resource  string `json:"resource"`
	Action    string `json:"action"`
	ID        uint   `json:"id"`
	Timestamp string `json:"timestamp"`
}

func NewChangeEvent(resource, action string, id uint) ChangeEvent {
	return ChangeEvent{
		Resource:  resource,
		Action:    action,
		ID:        id,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}
