package model

import "time"

// Role identifies the author of a chat message. The values mirror the
// completion service's own role names.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatMessage is one immutable entry in a session transcript.
type ChatMessage struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSendRequest is the payload for posting a message to a session.
type ChatSendRequest struct {
	Text string `json:"text"`
}

// ChatSendResponse carries the assistant reply plus the full transcript so
// the panel can re-render without a second round trip.
type ChatSendResponse struct {
	Reply    ChatMessage   `json:"reply"`
	Messages []ChatMessage `json:"messages"`
}
