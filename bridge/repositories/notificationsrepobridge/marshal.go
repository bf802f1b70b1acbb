package notificationsrepobridge

import (
	"github.com/taskflow/taskflow/core/repositories/notificationsrepo"
	"github.com/taskflow/taskflow/sdk/validation"
)

// MarshalToBridge converts a stored notification row to its canonical
// external form.
func MarshalToBridge(notification notificationsrepo.Notification) Notification {
	return Notification{
		ID:        notification.ID,
		UserID:    notification.UserID,
		Title:     notification.Title,
		Message:   notification.Message,
		CreatedAt: validation.FormatTime(notification.CreatedAt),
		IsRead:    validation.GetBoolOrDefault(notification.IsRead, false),
	}
}

// MarshalListToBridge converts a list of stored rows to bridge models.
func MarshalListToBridge(notifications []notificationsrepo.Notification) []Notification {
	bridgeNotifications := make([]Notification, len(notifications))
	for i, notification := range notifications {
		bridgeNotifications[i] = MarshalToBridge(notification)
	}
	return bridgeNotifications
}
