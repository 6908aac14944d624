package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/corkboardhq/corkd/internal/service"
	"github.com/corkboardhq/corkd/pkg/httpx"
	"github.com/corkboardhq/corkd/pkg/slogx"
)

// AuthHandler serves the public authentication surface: register, local
// login and GitHub login. These routes are allowlisted by the gatekeeper.
type AuthHandler struct {
	Auth *service.AuthService
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

type githubLoginRequest struct {
	Code string `json:"code"`
}

// HandleRegister godoc
//
//	@Summary		Register a local account
//	@Description	Creates a LOCAL user with the given email, password and display name.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		registerRequest	true	"email, password, name"
//	@Success		200		{object}	Envelope		"created user id, email, name"
//	@Failure		400		{object}	Envelope		"validation failure or email already registered"
//	@Router			/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg, ok := validateRegister(req); !ok {
		writeFailure(w, http.StatusBadRequest, msg)
		return
	}

	user, err := h.Auth.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyExists) {
			writeFailure(w, http.StatusBadRequest, "user already exist")
			return
		}
		log.Error("register failed", "err", err)
		writeFailure(w, http.StatusInternalServerError, "failed during creation")
		return
	}

	writeSuccess(w, userResponse{ID: user.ID, Email: user.Email, Name: user.Name})
}

// HandleLogin godoc
//
//	@Summary		Log in with email and password
//	@Description	Authenticates a local account and issues a bearer token. Federated accounts cannot log in here with a password.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"email, password"
//	@Success		200		{object}	Envelope		"user_id and bearer token"
//	@Failure		400		{object}	Envelope		"unknown email or wrong password"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeFailure(w, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			writeFailure(w, http.StatusBadRequest, "user with this email do not exist")
		case errors.Is(err, service.ErrBadCredentials):
			writeFailure(w, http.StatusBadRequest, "password do not match")
		default:
			log.Error("login failed", "err", err)
			writeFailure(w, http.StatusInternalServerError, "login failed")
		}
		return
	}

	httpx.NoCache(w)
	writeSuccess(w, loginResponse{UserID: result.UserID, Token: result.Token})
}

// HandleGitHubLogin godoc
//
//	@Summary		Log in through GitHub
//	@Description	Exchanges a GitHub authorization code for a local session, creating a FEDERATED account on first login.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		githubLoginRequest	true	"authorization code"
//	@Success		200		{object}	Envelope			"user_id and bearer token"
//	@Failure		400		{object}	Envelope			"invalid code or email conflict"
//	@Router			/auth/github [post].
func (h *AuthHandler) HandleGitHubLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req githubLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		writeFailure(w, http.StatusBadRequest, "authorization code is required")
		return
	}

	result, err := h.Auth.LoginWithGitHub(ctx, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCode):
			writeFailure(w, http.StatusBadRequest, "Invalid code")
		case errors.Is(err, service.ErrAlreadyExists):
			writeFailure(w, http.StatusBadRequest, "Email already exists!")
		case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrBadCredentials):
			// The email is held by a LOCAL account; the provider token is
			// not its password.
			writeFailure(w, http.StatusBadRequest, "Email already exists!")
		default:
			log.Error("github login failed", "err", err)
			writeFailure(w, http.StatusInternalServerError, "login failed")
		}
		return
	}

	httpx.NoCache(w)
	writeSuccess(w, loginResponse{UserID: result.UserID, Token: result.Token})
}

func validateRegister(req registerRequest) (string, bool) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return "email, password and name are required", false
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return "invalid email address", false
	}
	return "", true
}
