package notificationsrepobridge

import "fmt"

// Notification is the canonical external shape.
type Notification struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
	IsRead    bool   `json:"isRead"`
}

// MarkReadInput marks a single notification as read.
type MarkReadInput struct {
	ID string `json:"id"`
}

func (m MarkReadInput) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}
