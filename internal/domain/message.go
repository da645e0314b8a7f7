package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who authored a chat message
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one bubble of the chatbot transcript
type Message struct {
	ID   uuid.UUID `json:"id"`
	From Sender    `json:"from"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}
