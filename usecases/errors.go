package usecases

import (
	"errors"

	"blog-server/entities"
)

var (
	ErrBlogNotFound = errors.New("blog not found")
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// Notifier receives an event after each successful write.
type Notifier interface {
	Publish(event entities.ChangeEvent)
}

func publish(n Notifier, resource, action string, id uint) {
	if n != nil {
		n.Publish(entities.NewChangeEvent(resource, action, id))
	}
}
