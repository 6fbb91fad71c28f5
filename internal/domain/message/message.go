package message

import (
	"context"
	"time"
)

// Message is one stored chat line: a user question (IsQuestion=true) or a
// model answer (IsQuestion=false). Messages are immutable after creation;
// there is no update or delete path anywhere.
type Message struct {
	ID         uint
	Text       string
	CreatedAt  time.Time
	IsQuestion bool
	UserID     uint
}

// Repository is the persistence port for messages.
type Repository interface {
	// Create stages one insert; the generated ID and creation time are
	// populated on msg. The transaction boundary belongs to the caller.
	Create(ctx context.Context, msg *Message) error

	// Latest returns up to limit messages, newest first. Empty is not an
	// error.
	Latest(ctx context.Context, limit int) ([]*Message, error)

	// LatestOrFail is Latest, failing with a NotFound error when no
	// messages exist.
	LatestOrFail(ctx context.Context, limit int) ([]*Message, error)
}
