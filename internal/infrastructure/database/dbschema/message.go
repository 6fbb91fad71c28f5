package dbschema

import (
	"time"

	"github.com/Dmitry2004126/ai-assistant/internal/domain/message"
)

// Message is the database schema for chat messages. Rows are insert-only.
type Message struct {
	ID         uint      `gorm:"primaryKey"`
	Text       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index"`
	IsQuestion bool      `gorm:"not null;default:true"`
	UserID     uint      `gorm:"not null;index"`
	User       User      `gorm:"foreignKey:UserID"`
}

func (Message) TableName() string {
	return "messages"
}

// EtoD converts the schema row into the domain message.
func (m *Message) EtoD() *message.Message {
	return &message.Message{
		ID:         m.ID,
		Text:       m.Text,
		CreatedAt:  m.CreatedAt,
		IsQuestion: m.IsQuestion,
		UserID:     m.UserID,
	}
}

// NewSchemaMessage converts a domain message into its schema row.
func NewSchemaMessage(msg *message.Message) *Message {
	return &Message{
		ID:         msg.ID,
		Text:       msg.Text,
		CreatedAt:  msg.CreatedAt,
		IsQuestion: msg.IsQuestion,
		UserID:     msg.UserID,
	}
}
