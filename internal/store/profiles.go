package store

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/goliatone/go-errors"

	"github.com/givehub/givehub/internal/model"
)

// CreateDonationCenter inserts the donation center profile. The id must be
// set to the owning account's id before the call.
func (r *Repository) CreateDonationCenter(ctx context.Context, dc *model.DonationCenter) error {
	_, err := r.db.NewInsert().
		Model(dc).
		Returning("*").
		Exec(ctx)
	return err
}

// CreateUser inserts the user profile. The id must be set to the owning
// account's id before the call.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	_, err := r.db.NewInsert().
		Model(user).
		Returning("*").
		Exec(ctx)
	return err
}

// DonationCenterByID returns the donation center profile for the account id.
func (r *Repository) DonationCenterByID(ctx context.Context, id int64) (*model.DonationCenter, error) {
	dc := new(model.DonationCenter)
	err := r.db.NewSelect().
		Model(dc).
		Where("dc.id = ?", id).
		Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(err, errors.CategoryNotFound, "donation center not found").
				WithCode(errors.CodeNotFound)
		}
		return nil, err
	}
	return dc, nil
}

// UserByID returns the user profile for the account id.
func (r *Repository) UserByID(ctx context.Context, id int64) (*model.User, error) {
	user := new(model.User)
	err := r.db.NewSelect().
		Model(user).
		Where("usr.id = ?", id).
		Scan(ctx)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrap(err, errors.CategoryNotFound, "user not found").
				WithCode(errors.CodeNotFound)
		}
		return nil, err
	}
	return user, nil
}
