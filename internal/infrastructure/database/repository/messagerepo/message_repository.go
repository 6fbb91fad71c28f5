package messagerepo

import (
	"context"

	"github.com/Dmitry2004126/ai-assistant/internal/domain/message"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/database/dbschema"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/database/repository"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/database/transaction"
)

// MessageGormRepository specializes the generic repository for messages. It
// carries no message-specific query logic.
type MessageGormRepository struct {
	crud *repository.CrudRepository[dbschema.Message]
}

var _ message.Repository = (*MessageGormRepository)(nil)

func NewMessageGormRepository(db *transaction.Database) message.Repository {
	return &MessageGormRepository{crud: repository.NewCrudRepository[dbschema.Message](db)}
}

// Create implements message.Repository.
func (repo *MessageGormRepository) Create(ctx context.Context, msg *message.Message) error {
	model := dbschema.NewSchemaMessage(msg)
	if err := repo.crud.Create(ctx, model); err != nil {
		return err
	}
	msg.ID = model.ID
	msg.CreatedAt = model.CreatedAt
	return nil
}

// Latest implements message.Repository.
func (repo *MessageGormRepository) Latest(ctx context.Context, limit int) ([]*message.Message, error) {
	rows, err := repo.crud.List(ctx, latestOptions(limit))
	if err != nil {
		return nil, err
	}
	return toDomain(rows), nil
}

// LatestOrFail implements message.Repository.
func (repo *MessageGormRepository) LatestOrFail(ctx context.Context, limit int) ([]*message.Message, error) {
	rows, err := repo.crud.ListOrFail(ctx, latestOptions(limit), "")
	if err != nil {
		return nil, err
	}
	return toDomain(rows), nil
}

func latestOptions(limit int) repository.ListOptions {
	return repository.ListOptions{
		OrderBy: []repository.Order{{Field: "created_at", Desc: true}},
		Limit:   limit,
	}
}

func toDomain(rows []*dbschema.Message) []*message.Message {
	result := make([]*message.Message, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.EtoD())
	}
	return result
}
