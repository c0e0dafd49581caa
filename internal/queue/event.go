// Package queue defines message payloads exchanged over the message broker.
package queue

// ContentGeneratedEvent is published after a generation request completes.
// It carries enough detail for downstream consumers (notifications,
// analytics) without querying the server.
type ContentGeneratedEvent struct {
	ContentID   string `json:"content_id"`
	UserID      uint64 `json:"user_id"`
	Topic       string `json:"topic"`
	Tone        string `json:"tone"`
	ContentType string `json:"content_type"`
	Demo        bool   `json:"demo"` // true when the content came from the local fallback
	GeneratedAt string `json:"generated_at"`
}
