package httpapi_test

import (
	"context"
	"sync"

	"github.com/goliatone/go-errors"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/givehub/givehub/internal/auth"
	"github.com/givehub/givehub/internal/model"
	"github.com/givehub/givehub/internal/store"
)

func rowNotFound() error {
	return errors.New("no rows in result set", errors.CategoryNotFound).
		WithCode(errors.CodeNotFound)
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{
		Code:           pgerrcode.UniqueViolation,
		ConstraintName: constraint,
	}
}

// memStore is an in-memory auth.Store. It enforces the same uniqueness
// constraints as the schema, surfacing them as the driver error the real
// repository would, and WithinTx restores a snapshot on failure so rollback
// semantics hold.
type memStore struct {
	mu       sync.Mutex
	accounts map[int64]model.Account
	centers  map[int64]model.DonationCenter
	users    map[int64]model.User
	nextID   int64
}

var _ auth.Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		accounts: map[int64]model.Account{},
		centers:  map[int64]model.DonationCenter{},
		users:    map[int64]model.User{},
		nextID:   1,
	}
}

func (m *memStore) WithinTx(ctx context.Context, fn func(tx auth.Store) error) error {
	m.mu.Lock()
	accounts := cloneMap(m.accounts)
	centers := cloneMap(m.centers)
	users := cloneMap(m.users)
	nextID := m.nextID
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.accounts = accounts
		m.centers = centers
		m.users = users
		m.nextID = nextID
		m.mu.Unlock()
		return err
	}
	return nil
}

func cloneMap[V any](src map[int64]V) map[int64]V {
	dst := make(map[int64]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (m *memStore) CreateAccount(_ context.Context, account *model.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.accounts {
		if existing.Email == account.Email {
			return uniqueViolation("account_email_key")
		}
	}
	account.ID = m.nextID
	m.nextID++
	m.accounts[account.ID] = *account
	return nil
}

func (m *memStore) CreateDonationCenter(_ context.Context, dc *model.DonationCenter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.centers {
		if existing.Name == dc.Name {
			return uniqueViolation("donation_center_name_key")
		}
	}
	m.centers[dc.ID] = *dc
	return nil
}

func (m *memStore) CreateUser(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = *user
	return nil
}

func (m *memStore) AccountByEmail(_ context.Context, email string) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, account := range m.accounts {
		if account.Email == email {
			found := account
			return &found, nil
		}
	}
	return nil, rowNotFound()
}

func (m *memStore) AccountByID(_ context.Context, id int64) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[id]
	if !ok {
		return nil, rowNotFound()
	}
	return &account, nil
}

func (m *memStore) DonationCenterByID(_ context.Context, id int64) (*model.DonationCenter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	dc, ok := m.centers[id]
	if !ok {
		return nil, rowNotFound()
	}
	return &dc, nil
}

func (m *memStore) UserByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, rowNotFound()
	}
	return &user, nil
}

func (m *memStore) DeleteAccount(_ context.Context, id int64) (*model.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[id]
	if !ok {
		return nil, rowNotFound()
	}
	// Profile rows cascade with the account.
	delete(m.accounts, id)
	delete(m.centers, id)
	delete(m.users, id)
	return &account, nil
}

func (m *memStore) DuplicateColumn(err error) string {
	return store.DuplicateColumn(err)
}

// memItems is an in-memory ItemStore with the same ownership semantics as the
// repository: owned mutations match on both id and owner and report a missing
// row as not-found.
type memItems struct {
	mu         sync.Mutex
	items      map[int64]model.Item
	categories []model.ItemCategory
	nextID     int64
}

func newMemItems() *memItems {
	return &memItems{
		items:  map[int64]model.Item{},
		nextID: 1,
	}
}

func (m *memItems) Items(_ context.Context) ([]model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]model.Item, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}
	return items, nil
}

func (m *memItems) ItemByID(_ context.Context, id int64) (*model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok {
		return nil, rowNotFound()
	}
	return &item, nil
}

func (m *memItems) CreateItem(_ context.Context, item *model.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = m.nextID
	m.nextID++
	m.items[item.ID] = *item
	return nil
}

func (m *memItems) UpdateOwnedItem(_ context.Context, id, ownerID int64, patch model.ItemPatch) (*model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok || item.DonationCenterID != ownerID {
		return nil, rowNotFound()
	}
	if patch.CategoryID != nil {
		item.CategoryID = *patch.CategoryID
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	m.items[id] = item
	return &item, nil
}

func (m *memItems) DeleteOwnedItem(_ context.Context, id, ownerID int64) (*model.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[id]
	if !ok || item.DonationCenterID != ownerID {
		return nil, rowNotFound()
	}
	delete(m.items, id)
	return &item, nil
}

func (m *memItems) ItemCategories(_ context.Context) ([]model.ItemCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.ItemCategory(nil), m.categories...), nil
}
