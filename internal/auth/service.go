// Package auth implements the credential-issuance core: password hashing,
// token issue/verify, the signup/login/delete service, and the authorization
// middleware that loads a role entity for downstream ownership checks.
package auth

import (
	"context"
	"log/slog"

	"github.com/goliatone/go-errors"

	"github.com/givehub/givehub/internal/model"
)

// Store is the persistence port the auth core needs. Implemented by
// store.Repository; mocked in tests.
type Store interface {
	// WithinTx runs fn against a transaction-bound Store. fn returning an
	// error rolls back everything it did.
	WithinTx(ctx context.Context, fn func(tx Store) error) error

	CreateAccount(ctx context.Context, account *model.Account) error
	CreateDonationCenter(ctx context.Context, dc *model.DonationCenter) error
	CreateUser(ctx context.Context, user *model.User) error

	AccountByEmail(ctx context.Context, email string) (*model.Account, error)
	AccountByID(ctx context.Context, id int64) (*model.Account, error)
	DonationCenterByID(ctx context.Context, id int64) (*model.DonationCenter, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
	DeleteAccount(ctx context.Context, id int64) (*model.Account, error)

	// DuplicateColumn classifies a storage error as a uniqueness violation on
	// the named column, or "" when it is something else.
	DuplicateColumn(err error) string
}

// Service composes the hasher, the token service, and storage into the
// signup, login, and re-authenticated delete operations.
type Service struct {
	store  Store
	hasher PasswordHasher
	tokens *TokenService
	logger *slog.Logger
}

// NewService wires the auth service. A nil logger discards output.
func NewService(store Store, hasher PasswordHasher, tokens *TokenService, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// AccountInput is the credential half of a signup payload.
type AccountInput struct {
	Email    string
	Password string
}

// ProfileInput carries the role-specific profile fields. Address and Phone
// only apply to donation centers.
type ProfileInput struct {
	Name    string
	Address string
	Phone   string
}

// SignupResult is the response of a successful signup.
type SignupResult struct {
	Account *model.Account
	Profile model.Profile
	Token   string
}

// LoginResult is the response of a successful login.
type LoginResult struct {
	Account *model.Account
	Token   string
}

// Signup creates the account and its role profile in one transaction, then
// issues a token for the new account. The profile reuses the account's
// generated id, so a profile insert failure rolls the account back and a
// partial signup is never observable.
func (s *Service) Signup(ctx context.Context, role model.Role, account AccountInput, profile ProfileInput) (*SignupResult, error) {
	if !role.IsProfileRole() {
		return nil, errors.New("unknown signup role", errors.CategoryBadInput).
			WithCode(errors.CodeBadRequest).
			WithMetadata(map[string]any{"role": string(role)})
	}

	hash, err := s.hasher.Hash(account.Password)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	created := &model.Account{Email: account.Email, Password: hash}
	var createdProfile model.Profile

	err = s.store.WithinTx(ctx, func(tx Store) error {
		if err := tx.CreateAccount(ctx, created); err != nil {
			return err
		}

		switch role {
		case model.RoleDonationCenter:
			dc := &model.DonationCenter{
				ID:      created.ID,
				Name:    profile.Name,
				Address: profile.Address,
				Phone:   profile.Phone,
			}
			if err := tx.CreateDonationCenter(ctx, dc); err != nil {
				return err
			}
			createdProfile = dc
		case model.RoleUser:
			user := &model.User{ID: created.ID, Name: profile.Name}
			if err := tx.CreateUser(ctx, user); err != nil {
				return err
			}
			createdProfile = user
		}
		return nil
	})
	if err != nil {
		return nil, s.classifySignupError(err)
	}

	token, err := s.tokens.Issue(created.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("account created", "account_id", created.ID, "role", string(role))

	return &SignupResult{Account: created, Profile: createdProfile, Token: token}, nil
}

// classifySignupError maps a rolled-back transaction error onto the duplicate
// taxonomy: email collisions are client-validation errors, any other unique
// collision is a conflict, everything else stays internal.
func (s *Service) classifySignupError(err error) error {
	switch column := s.store.DuplicateColumn(err); {
	case column == "email":
		return ErrDuplicateEmail
	case column != "":
		return DuplicateProfileError(column)
	}
	return errors.Wrap(err, errors.CategoryInternal, "signup transaction failed")
}

// Login verifies the credentials and issues a fresh token. An unknown email
// and a wrong password return the same error so accounts cannot be
// enumerated.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	account, err := s.verifyCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(account.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Account: account, Token: token}, nil
}

// DeleteAccount re-authenticates exactly like Login, then deletes the account
// with the given id. The profile row cascades at the storage layer. A passing
// credential check with an unknown id reports not-found.
func (s *Service) DeleteAccount(ctx context.Context, id int64, email, password string) (*model.Account, error) {
	if _, err := s.verifyCredentials(ctx, email, password); err != nil {
		return nil, err
	}

	account, err := s.store.DeleteAccount(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrAccountNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to delete account")
	}

	s.logger.Info("account deleted", "account_id", id)
	return account, nil
}

func (s *Service) verifyCredentials(ctx context.Context, email, password string) (*model.Account, error) {
	account, err := s.store.AccountByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to look up account")
	}

	if err := s.hasher.Compare(password, account.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}
