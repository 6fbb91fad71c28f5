package userrepo

import (
	"context"

	"github.com/Dmitry2004126/ai-assistant/internal/domain/user"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/database/dbschema"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/database/repository"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/database/transaction"
)

// UserGormRepository specializes the generic repository for accounts.
type UserGormRepository struct {
	crud *repository.CrudRepository[dbschema.User]
}

var _ user.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *transaction.Database) user.Repository {
	return &UserGormRepository{crud: repository.NewCrudRepository[dbschema.User](db)}
}

// FindByID implements user.Repository.
func (repo *UserGormRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return repo.findOne(ctx, map[string]any{"id": id})
}

// FindByEmail implements user.Repository.
func (repo *UserGormRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return repo.findOne(ctx, map[string]any{"email": email})
}

// Create implements user.Repository.
func (repo *UserGormRepository) Create(ctx context.Context, usr *user.User) error {
	model := dbschema.NewSchemaUser(usr)
	if err := repo.crud.Create(ctx, model); err != nil {
		return err
	}
	usr.ID = model.ID
	usr.CreatedAt = model.CreatedAt
	return nil
}

func (repo *UserGormRepository) findOne(ctx context.Context, filters map[string]any) (*user.User, error) {
	rows, err := repo.crud.List(ctx, repository.ListOptions{Filters: filters, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].EtoD(), nil
}
