// Package repository provides a generic gorm-backed CRUD layer. Per-entity
// repositories specialize CrudRepository by type parameter and convert
// between schema and domain types; they add no query logic of their own.
package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm/clause"

	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/database/transaction"
	"github.com/Dmitry2004126/ai-assistant/internal/utils/apperrors"
)

// Order is one sort key. Keys are applied in the order given; the first
// entry is the primary sort key.
type Order struct {
	Field string
	Desc  bool
}

// ListOptions narrows a List call. The zero value selects everything.
type ListOptions struct {
	// Filters are exact-match field=value conditions, ANDed together.
	Filters map[string]any
	OrderBy []Order
	Limit   int // 0 or negative: no limit
	Offset  int // 0 or negative: no offset
}

// CrudRepository is a generic repository over one schema model M. It joins
// the caller's transaction when the context carries one.
type CrudRepository[M any] struct {
	db *transaction.Database
}

func NewCrudRepository[M any](db *transaction.Database) *CrudRepository[M] {
	return &CrudRepository[M]{db: db}
}

// List returns the rows matching opts. An empty result is a valid, non-error
// outcome.
func (r *CrudRepository[M]) List(ctx context.Context, opts ListOptions) ([]*M, error) {
	tx := r.db.GetTx(ctx).WithContext(ctx)

	if len(opts.Filters) > 0 {
		tx = tx.Where(opts.Filters)
	}
	for _, order := range opts.OrderBy {
		tx = tx.Order(clause.OrderByColumn{
			Column: clause.Column{Name: order.Field},
			Desc:   order.Desc,
		})
	}
	if opts.Offset > 0 {
		tx = tx.Offset(opts.Offset)
	}
	if opts.Limit > 0 {
		tx = tx.Limit(opts.Limit)
	}

	var rows []*M
	if err := tx.Find(&rows).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrorTypeDatabase,
			fmt.Sprintf("failed to list %s", entityName[M]()), err)
	}
	return rows, nil
}

// ListOrFail is List, failing with NotFound when nothing matches. The
// client-visible detail is the supplied one, or an auto-generated message
// naming the entity kind and the filters applied.
func (r *CrudRepository[M]) ListOrFail(ctx context.Context, opts ListOptions, detail string) ([]*M, error) {
	rows, err := r.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		if detail == "" {
			detail = notFoundMessage(entityName[M](), opts.Filters)
		}
		return nil, apperrors.NotFound(detail)
	}
	return rows, nil
}

// Create stages one insert. The generated identifier and column defaults are
// populated on model; committing is the caller's concern when a transaction
// is in flight.
func (r *CrudRepository[M]) Create(ctx context.Context, model *M) error {
	if err := r.db.GetTx(ctx).WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrorTypeDatabase,
			fmt.Sprintf("failed to create %s", entityName[M]()), err)
	}
	return nil
}

func entityName[M any]() string {
	name := fmt.Sprintf("%T", *new(M))
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func notFoundMessage(entity string, filters map[string]any) string {
	if len(filters) == 0 {
		return fmt.Sprintf("No %s found", entity)
	}

	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, filters[k]))
	}
	return fmt.Sprintf("No %s found with %s", entity, strings.Join(parts, ", "))
}
