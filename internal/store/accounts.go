package store

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/goliatone/go-errors"

	"github.com/givehub/givehub/internal/model"
)

// CreateAccount inserts the account and populates its generated id and
// timestamps. Uniqueness violations surface untouched so the caller can
// classify them.
func (r *Repository) CreateAccount(ctx context.Context, account *model.Account) error {
	_, err := r.db.NewInsert().
		Model(account).
		Returning("*").
		Exec(ctx)
	return err
}

// AccountByEmail returns the account holding the email, or a not-found error.
func (r *Repository) AccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	account := new(model.Account)
	err := r.db.NewSelect().
		Model(account).
		Where("email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(err, errors.CategoryNotFound, "account not found").
				WithCode(errors.CodeNotFound)
		}
		return nil, err
	}
	return account, nil
}

// AccountByID returns the account with the given id, or a not-found error.
func (r *Repository) AccountByID(ctx context.Context, id int64) (*model.Account, error) {
	account := new(model.Account)
	err := r.db.NewSelect().
		Model(account).
		Where("acc.id = ?", id).
		Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(err, errors.CategoryNotFound, "account not found").
				WithCode(errors.CodeNotFound)
		}
		return nil, err
	}
	return account, nil
}

// DeleteAccount removes the account and returns the deleted row. The profile
// row goes with it via ON DELETE CASCADE.
func (r *Repository) DeleteAccount(ctx context.Context, id int64) (*model.Account, error) {
	account := new(model.Account)
	res, err := r.db.NewDelete().
		Model(account).
		Where("acc.id = ?", id).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, errors.New("account not found", errors.CategoryNotFound).
			WithCode(errors.CodeNotFound)
	}
	return account, nil
}
