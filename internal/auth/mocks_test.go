package auth_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/givehub/givehub/internal/auth"
	"github.com/givehub/givehub/internal/model"
)

// mockStore implements auth.Store for testing.
type mockStore struct {
	mock.Mock
}

var _ auth.Store = (*mockStore)(nil)

// WithinTx records the call and runs the callback against the same mock, so
// expectations cover the statements inside the transaction too.
func (m *mockStore) WithinTx(ctx context.Context, fn func(tx auth.Store) error) error {
	m.Called(ctx)
	return fn(m)
}

func (m *mockStore) CreateAccount(ctx context.Context, account *model.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *mockStore) CreateDonationCenter(ctx context.Context, dc *model.DonationCenter) error {
	args := m.Called(ctx, dc)
	return args.Error(0)
}

func (m *mockStore) CreateUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockStore) AccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*model.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) AccountByID(ctx context.Context, id int64) (*model.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*model.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) DonationCenterByID(ctx context.Context, id int64) (*model.DonationCenter, error) {
	args := m.Called(ctx, id)
	if dc, ok := args.Get(0).(*model.DonationCenter); ok {
		return dc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) UserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*model.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) DeleteAccount(ctx context.Context, id int64) (*model.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*model.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) DuplicateColumn(err error) string {
	args := m.Called(err)
	return args.String(0)
}
