package auth

import "github.com/goliatone/go-errors"

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password. The two cases must stay indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("Invalid credentials", errors.CategoryAuth).
	WithCode(errors.CodeBadRequest).
	WithTextCode("INVALID_CREDENTIALS")

// ErrDuplicateEmail is the client-validation mapping of an email uniqueness
// violation during signup.
var ErrDuplicateEmail = errors.New("Duplicate email", errors.CategoryValidation).
	WithCode(errors.CodeBadRequest).
	WithTextCode("DUPLICATE_EMAIL")

// ErrUnauthorized covers a missing, malformed, expired, or role-mismatched
// bearer token.
var ErrUnauthorized = errors.New("Unauthorized", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("UNAUTHORIZED")

// ErrForbidden is returned when a resource exists but the caller does not own
// it, or when ownership cannot be confirmed.
var ErrForbidden = errors.New("Forbidden", errors.CategoryAuthz).
	WithCode(errors.CodeForbidden).
	WithTextCode("FORBIDDEN")

// ErrAccountNotFound is returned by the re-authenticated delete when the id
// matches no account after the credential check passed.
var ErrAccountNotFound = errors.New("Account not found", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound).
	WithTextCode("ACCOUNT_NOT_FOUND")

// ErrTokenExpired marks a token whose validity window has passed.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("TOKEN_EXPIRED")

// ErrTokenMalformed marks a token that failed signature or payload checks.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("TOKEN_MALFORMED")

// ErrMismatchedHashAndPassword is the hasher's verification failure.
var ErrMismatchedHashAndPassword = errors.New("mismatched password and hash", errors.CategoryAuth).
	WithCode(errors.CodeBadRequest)

// ErrNoEmptyString rejects hashing an empty password.
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryValidation).
	WithCode(errors.CodeBadRequest)

// DuplicateProfileError is the conflict mapping of a uniqueness violation on
// a role profile table, e.g. a donation center name already in use.
func DuplicateProfileError(column string) *errors.Error {
	return errors.New("Duplicate "+column, errors.CategoryConflict).
		WithCode(errors.CodeConflict).
		WithTextCode("DUPLICATE_PROFILE").
		WithMetadata(map[string]any{"column": column})
}
