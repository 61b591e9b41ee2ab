package core

import (
	"errors"
	"fmt"
)

// ErrUsernameRequired is returned by Submit for empty or whitespace-only input.
var ErrUsernameRequired = errors.New("username required")

// NotificationKind categorizes a user-visible transient message
type NotificationKind int

const (
	NotificationUsernameRequired NotificationKind = iota
	NotificationFetchFailed
	NotificationOpenFailed
	NotificationShareFailed
	NotificationShared
)

const (
	MsgUsernameRequired = "username required"
	MsgFetchFailed      = "failed to fetch repositories"
	MsgShared           = "link copied to clipboard"
)

func (k NotificationKind) String() string {
	switch k {
	case NotificationUsernameRequired:
		return "username-required"
	case NotificationFetchFailed:
		return "fetch-failed"
	case NotificationOpenFailed:
		return "open-failed"
	case NotificationShareFailed:
		return "share-failed"
	case NotificationShared:
		return "shared"
	}

	return ""
}

// IsError reports whether the notification describes a failure.
func (k NotificationKind) IsError() bool {
	return k != NotificationShared
}

// Notification is a transient message shown to the user
type Notification struct {
	Kind    NotificationKind
	Message string
}

func usernameRequired() Notification {
	return Notification{Kind: NotificationUsernameRequired, Message: MsgUsernameRequired}
}

func fetchFailed() Notification {
	return Notification{Kind: NotificationFetchFailed, Message: MsgFetchFailed}
}

func openFailed(err error) Notification {
	return Notification{Kind: NotificationOpenFailed, Message: fmt.Sprintf("failed to open browser: %v", err)}
}

func shareFailed(err error) Notification {
	return Notification{Kind: NotificationShareFailed, Message: fmt.Sprintf("failed to share link: %v", err)}
}

func shared() Notification {
	return Notification{Kind: NotificationShared, Message: MsgShared}
}
