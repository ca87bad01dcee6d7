package accounts

import (
	"context"

	"github.com/avetisov/authsvc/internal/dbx"
)

// Repository is the persistence boundary for the account aggregate.
type Repository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateAccount(ctx context.Context, account *Account) (*Account, error)
	CreateEmail(ctx context.Context, email *AccountEmail) (*AccountEmail, error)
	CreatePassword(ctx context.Context, password *AccountPassword) (*AccountPassword, error)
	CreateSalt(ctx context.Context, salt *AccountSalt) (*AccountSalt, error)
	CreatePublicID(ctx context.Context, publicID *AccountPublicID) (*AccountPublicID, error)
	GetLoginDataByEmail(ctx context.Context, email string) (*LoginData, error)
}

// RepositoryProvider vends a Repository bound to the given handle, so a
// flow can run several writes against one open transaction.
type RepositoryProvider func(db dbx.DBTX) Repository
