package models

// Envelope is the single response wrapper used by every handler. Auth
// endpoints fill User, everything else fills Content; failures carry Message.
type Envelope struct {
	Success bool   `json:"success"`
	Content any    `json:"content,omitempty"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}
