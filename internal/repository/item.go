package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ductran2702/code-challenge-backend/internal/model/item"
	"github.com/jackc/pgx/v5"
)

// ErrItemNotFound is returned when no row matches the requested id.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository persists items in the "items" table.
type ItemRepository struct {
	db DBTX
}

// NewItemRepository binds a repository to the given DBTX.
func NewItemRepository(db DBTX) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, name, description, created_at, updated_at`

// CreateItem inserts a new item and returns it with the store-assigned id
// and timestamps.
func (r *ItemRepository) CreateItem(ctx context.Context, payload *item.CreateItemPayload) (*item.Item, error) {
	query := `
		INSERT INTO items (name, description)
		VALUES ($1, $2)
		RETURNING ` + itemColumns

	row := r.db.QueryRow(ctx, query, payload.Name, payload.Description)

	created, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return created, nil
}

// GetItems lists items newest first. A non-empty query name restricts the
// result to items whose name contains it, ignoring case; "%" and "_" in
// the filter match literally.
func (r *ItemRepository) GetItems(ctx context.Context, query *item.GetItemsQuery) ([]item.Item, error) {
	var (
		stmt = `SELECT ` + itemColumns + ` FROM items`
		args []any
	)

	if query != nil && query.Name != "" {
		stmt += ` WHERE name ILIKE $1 ESCAPE '\'`
		args = append(args, "%"+escapeLike(query.Name)+"%")
	}
	stmt += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}
	defer rows.Close()

	items := make([]item.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

// GetItemByID returns the item with the given id or ErrItemNotFound.
func (r *ItemRepository) GetItemByID(ctx context.Context, id int64) (*item.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	found, err := scanItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get item %d: %w", id, err)
	}
	return found, nil
}

// UpdateItem applies the supplied fields and refreshes updated_at.
// Fields left nil keep their stored value; ClearDescription writes NULL.
func (r *ItemRepository) UpdateItem(ctx context.Context, payload *item.UpdateItemPayload) (*item.Item, error) {
	query := `
		UPDATE items
		SET
			name = COALESCE($2, name),
			description = CASE WHEN $4::boolean THEN NULL ELSE COALESCE($3, description) END,
			updated_at = clock_timestamp()
		WHERE id = $1
		RETURNING ` + itemColumns

	row := r.db.QueryRow(ctx, query, payload.ID, payload.Name, payload.Description, payload.ClearDescription)

	updated, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to update item %d: %w", payload.ID, err)
	}
	return updated, nil
}

// DeleteItem removes the item and returns it as it was just before deletion.
func (r *ItemRepository) DeleteItem(ctx context.Context, id int64) (*item.Item, error) {
	query := `DELETE FROM items WHERE id = $1 RETURNING ` + itemColumns

	deleted, err := scanItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to delete item %d: %w", id, err)
	}
	return deleted, nil
}

func scanItem(row pgx.Row) (*item.Item, error) {
	var it item.Item
	if err := row.Scan(&it.ID, &it.Name, &it.Description, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	return &it, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
