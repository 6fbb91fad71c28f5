package llmres

import (
	"time"

	"github.com/Dmitry2004126/ai-assistant/internal/domain/message"
)

// Answer carries the assistant's reply to a question.
type Answer struct {
	Message string `json:"message"`
}

// Message is one stored chat message, newest first in listings.
type Message struct {
	Message  string    `json:"message"`
	Question bool      `json:"question"`
	Date     time.Time `json:"date"`
	UserID   uint      `json:"user_id"`
}

func NewMessage(msg *message.Message) Message {
	return Message{
		Message:  msg.Text,
		Question: msg.IsQuestion,
		Date:     msg.CreatedAt,
		UserID:   msg.UserID,
	}
}

func NewMessageList(msgs []*message.Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, NewMessage(msg))
	}
	return out
}
