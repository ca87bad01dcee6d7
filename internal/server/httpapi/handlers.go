package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avetisov/authsvc/internal/common"
	"github.com/avetisov/authsvc/internal/server/auth"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registeredUser struct {
	UserID string `json:"userId"`
}

type registerResponse struct {
	User registeredUser `json:"user"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "Password is required")
		return
	}

	result, err := s.accounts.Register(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidEmail):
			writeError(w, http.StatusBadRequest, "Invalid email address")
		case errors.Is(err, common.ErrorEmailTaken):
			writeError(w, http.StatusBadRequest, "Email is taken")
		default:
			s.logger.Error(ctx, "registration failed", "error", err)
			writeSystemError(w, "An error occurred on our side, we could not register you")
		}
		return
	}

	s.logger.Info(ctx, "account registered", "public_id", result.PublicID.PublicID)
	writeEnvelope(w, http.StatusOK, "success", "User registered successfully",
		registerResponse{User: registeredUser{UserID: result.PublicID.PublicID}})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "Password is required")
		return
	}

	result, err := s.accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorInvalidEmail):
			writeError(w, http.StatusBadRequest, "Email address is not valid")
		case errors.Is(err, common.ErrorUnauthorized):
			writeError(w, http.StatusUnauthorized, "Invalid password")
		case errors.Is(err, common.ErrorNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		default:
			s.logger.Error(ctx, "login failed", "error", err)
			writeSystemError(w, "An unexpected error occurred, we could not login you right now")
		}
		return
	}

	token, err := auth.GenerateToken(result.PublicID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(ctx, "token signing failed", "error", err)
		writeSystemError(w, "An unexpected error occurred, we could not login you right now")
		return
	}

	s.logger.Info(ctx, "user logged in", "public_id", result.PublicID)
	w.Header().Set("Authorization", "Bearer "+token)
	writeEnvelope(w, http.StatusOK, "success", "User logged in", loginResponse{Token: token})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeEnvelope(w, http.StatusOK, "success", "Server is up and running", nil)
}
