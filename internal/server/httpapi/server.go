// Package httpapi exposes the registration and login flows over HTTP.
// Routing is handled by gorilla/mux; every response uses the same JSON
// envelope.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avetisov/authsvc/internal/logging"
	"github.com/avetisov/authsvc/internal/server/accounts"
)

// AccountService is the slice of the accounts service the handlers need.
type AccountService interface {
	Register(ctx context.Context, email, password string) (*accounts.RegistrationResult, error)
	Login(ctx context.Context, email, password string) (*accounts.LoginResult, error)
}

type Server struct {
	address       string
	accounts      AccountService
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewServer(address string, l logging.Logger, svc AccountService, secretKey string, tokenValidity time.Duration) *Server {
	return &Server{
		address:       address,
		logger:        l.With("module", "http_server"),
		accounts:      svc,
		jwtSecret:     []byte(secretKey),
		tokenValidity: tokenValidity,
	}
}

// Router builds the route table. Split out from Run so tests can drive
// the handlers through httptest without binding a socket.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/user/signup/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/user/signin/login", s.handleLogin).Methods(http.MethodPost)
	// Legacy alias kept for existing clients.
	r.HandleFunc("/user/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/status", s.handleStatus).Methods(http.MethodGet)
	return r
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
