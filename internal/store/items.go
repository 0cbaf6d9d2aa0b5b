package store

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/goliatone/go-errors"

	"github.com/givehub/givehub/internal/model"
)

// Items lists the whole catalog.
func (r *Repository) Items(ctx context.Context) ([]model.Item, error) {
	items := make([]model.Item, 0)
	if err := r.db.NewSelect().Model(&items).Order("itm.id").Scan(ctx); err != nil {
		return nil, err
	}
	return items, nil
}

// ItemByID returns a single item, or a not-found error.
func (r *Repository) ItemByID(ctx context.Context, id int64) (*model.Item, error) {
	item := new(model.Item)
	err := r.db.NewSelect().
		Model(item).
		Where("itm.id = ?", id).
		Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(err, errors.CategoryNotFound, "item not found").
				WithCode(errors.CodeNotFound)
		}
		return nil, err
	}
	return item, nil
}

// CreateItem inserts the item and populates its generated id. Constraint
// violations (unknown category, unknown donation center) surface untouched.
func (r *Repository) CreateItem(ctx context.Context, item *model.Item) error {
	_, err := r.db.NewInsert().
		Model(item).
		Returning("*").
		Exec(ctx)
	return err
}

// UpdateOwnedItem applies the patch to the item only when it belongs to
// ownerID. A zero-row update reports not-found; the caller decides how much
// of that to reveal.
func (r *Repository) UpdateOwnedItem(ctx context.Context, id, ownerID int64, patch model.ItemPatch) (*model.Item, error) {
	if patch.IsZero() {
		return r.ownedItem(ctx, id, ownerID)
	}

	item := new(model.Item)
	q := r.db.NewUpdate().
		Model(item).
		Where("itm.id = ?", id).
		Where("itm.donation_center_id = ?", ownerID).
		Returning("*")

	if patch.CategoryID != nil {
		q = q.Set("category_id = ?", *patch.CategoryID)
	}
	if patch.Name != nil {
		q = q.Set("name = ?", *patch.Name)
	}
	if patch.Quantity != nil {
		q = q.Set("quantity = ?", *patch.Quantity)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, errors.New("item not found", errors.CategoryNotFound).
			WithCode(errors.CodeNotFound)
	}
	return item, nil
}

// DeleteOwnedItem removes the item only when it belongs to ownerID and
// returns the deleted row.
func (r *Repository) DeleteOwnedItem(ctx context.Context, id, ownerID int64) (*model.Item, error) {
	item := new(model.Item)
	res, err := r.db.NewDelete().
		Model(item).
		Where("itm.id = ?", id).
		Where("itm.donation_center_id = ?", ownerID).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, errors.New("item not found", errors.CategoryNotFound).
			WithCode(errors.CodeNotFound)
	}
	return item, nil
}

func (r *Repository) ownedItem(ctx context.Context, id, ownerID int64) (*model.Item, error) {
	item := new(model.Item)
	err := r.db.NewSelect().
		Model(item).
		Where("itm.id = ?", id).
		Where("itm.donation_center_id = ?", ownerID).
		Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(err, errors.CategoryNotFound, "item not found").
				WithCode(errors.CodeNotFound)
		}
		return nil, err
	}
	return item, nil
}

// ItemCategories lists the category lookup table.
func (r *Repository) ItemCategories(ctx context.Context) ([]model.ItemCategory, error) {
	categories := make([]model.ItemCategory, 0)
	if err := r.db.NewSelect().Model(&categories).Order("cat.id").Scan(ctx); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateItemCategory inserts a category. Used by the seed command.
func (r *Repository) CreateItemCategory(ctx context.Context, category *model.ItemCategory) error {
	_, err := r.db.NewInsert().
		Model(category).
		Returning("*").
		Exec(ctx)
	return err
}
