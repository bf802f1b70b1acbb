// Package respond holds the standard response shapes shared by the bridges.
package respond

import "encoding/json"

// Message provides a standard `{"message": ...}` response.
type Message struct {
	Message string `json:"message"`
}

func NewMessage(message string) Message {
	return Message{Message: message}
}

func (m Message) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json; charset=utf-8", err
}

// MessageID provides a `{"message": ..., "id": ...}` response for mutations
// that echo the record id back.
type MessageID struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func NewMessageID(message, id string) MessageID {
	return MessageID{Message: message, ID: id}
}

func (m MessageID) Encode() ([]byte, string, error) {
	data, err := json.Marshal(m)
	return data, "application/json; charset=utf-8", err
}
