package db

import (
	"context"
	"database/sql"

	"github.com/avetisov/authsvc/internal/dbx"
	"github.com/avetisov/authsvc/internal/server/accounts"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Accounts(db dbx.DBTX) accounts.Repository
}
