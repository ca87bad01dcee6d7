package accounts

import (
	"database/sql"
	"time"
)

// Account is the root identity record. Its ID is internal to the store
// and never appears in API responses or tokens.
type Account struct {
	ID          string
	EmailSignup bool
	CreatedAt   time.Time
	ModifiedAt  sql.NullTime
}

// AccountEmail holds the globally unique email bound to one account.
type AccountEmail struct {
	ID         string
	AccountID  string
	Email      string
	CreatedAt  time.Time
	ModifiedAt sql.NullTime
}

// AccountPassword holds the bcrypt hash and the salt it was produced with.
type AccountPassword struct {
	ID         string
	AccountID  string
	Hash       string
	Salt       string
	CreatedAt  time.Time
	ModifiedAt sql.NullTime
}

// AccountSalt holds an independently generated salt. It takes no part in
// password verification; the column is kept for schema compatibility.
type AccountSalt struct {
	ID         string
	AccountID  string
	Salt       string
	CreatedAt  time.Time
	ModifiedAt sql.NullTime
}

// AccountPublicID holds the externally visible identifier used in tokens
// and API responses.
type AccountPublicID struct {
	ID         string
	AccountID  string
	PublicID   string
	CreatedAt  time.Time
	ModifiedAt sql.NullTime
}

// LoginData is the typed projection of the five-way join used by the
// login flow. It never leaves the service layer.
type LoginData struct {
	AccountID    string
	Email        string
	PasswordHash string
	PasswordSalt string
	StoredSalt   string
	PublicID     string
}

// RegistrationResult is what the registration flow hands back to the
// transport layer. Password and salt records are persisted but excluded
// so hash material cannot leak outward.
type RegistrationResult struct {
	Account  *Account
	Email    *AccountEmail
	PublicID *AccountPublicID
}

// LoginResult carries the data the transport layer needs to issue a token.
type LoginResult struct {
	Email    string
	PublicID string
}
