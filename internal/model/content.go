package model

// ContentRecord is one generated piece of content kept in the history.
// Timestamps are RFC 3339 strings because the record is served to the
// dashboard verbatim.
type ContentRecord struct {
	ID          string   `json:"id"`
	Topic       string   `json:"topic"`
	Tone        string   `json:"tone"`
	ContentType string   `json:"content_type"`
	Keywords    []string `json:"keywords"`
	Content     string   `json:"content"`
	Timestamp   string   `json:"timestamp"`
	Image       string   `json:"image,omitempty"`
}
