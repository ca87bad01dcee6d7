// Package accounts contains the account aggregate: entity records, the
// persistence boundary, and the registration/login flows built on top.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"

	"github.com/google/uuid"

	"github.com/avetisov/authsvc/internal/common"
	"github.com/avetisov/authsvc/internal/cryptox"
	"github.com/avetisov/authsvc/internal/dbx"
	"github.com/avetisov/authsvc/internal/logging"
)

var emailRx = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Service runs the registration and login flows. Both are strictly
// sequential; every failure is terminal for the request.
type Service struct {
	db     *sql.DB
	repos  RepositoryProvider
	logger logging.Logger
}

func NewService(db *sql.DB, repos RepositoryProvider, logger logging.Logger) *Service {
	return &Service{
		db:     db,
		repos:  repos,
		logger: logger.With("module", "accounts"),
	}
}

// Register creates the account aggregate for the given credentials: the
// root record plus email, password, salt and public-id records, all in
// one transaction so a mid-flow failure leaves no orphaned rows.
func (s *Service) Register(ctx context.Context, email, password string) (*RegistrationResult, error) {
	if !emailRx.MatchString(email) {
		return nil, common.ErrorInvalidEmail
	}

	taken, err := s.repos(s.db).EmailExists(ctx, email)
	if err != nil {
		s.logger.Error(ctx, "email uniqueness check failed", "error", err)
		return nil, common.ErrorInternal
	}
	if taken {
		return nil, common.ErrorEmailTaken
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	passwordSalt, err := cryptox.GenerateSalt(cryptox.HashCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	// Stored but never read back during verification.
	extraSalt, err := cryptox.GenerateSalt(cryptox.HashCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	var result *RegistrationResult
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos(tx)

		account, err := repo.CreateAccount(ctx, &Account{EmailSignup: true})
		if err != nil {
			return err
		}

		accountEmail, err := repo.CreateEmail(ctx, &AccountEmail{AccountID: account.ID, Email: email})
		if err != nil {
			return err
		}

		if _, err := repo.CreatePassword(ctx, &AccountPassword{
			AccountID: account.ID,
			Hash:      hash,
			Salt:      passwordSalt,
		}); err != nil {
			return err
		}

		if _, err := repo.CreateSalt(ctx, &AccountSalt{AccountID: account.ID, Salt: extraSalt}); err != nil {
			return err
		}

		publicID, err := repo.CreatePublicID(ctx, &AccountPublicID{
			AccountID: account.ID,
			PublicID:  uuid.NewString(),
		})
		if err != nil {
			return err
		}

		result = &RegistrationResult{Account: account, Email: accountEmail, PublicID: publicID}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "registration transaction failed", "error", err)
		return nil, common.ErrorInternal
	}

	return result, nil
}

// Login verifies the credentials against the stored hash and returns the
// account's public identifier. An unknown email is ErrorNotFound, a wrong
// password ErrorUnauthorized; callers must not conflate the two.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if !emailRx.MatchString(email) {
		return nil, common.ErrorInvalidEmail
	}

	data, err := s.repos(s.db).GetLoginDataByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "login data fetch failed", "error", err)
		return nil, common.ErrorInternal
	}

	if !cryptox.VerifyPassword(password, data.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return &LoginResult{Email: data.Email, PublicID: data.PublicID}, nil
}
