package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/velora/content-studio/internal/config"
	"github.com/velora/content-studio/internal/repository"
	"github.com/velora/content-studio/internal/utils"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserStore
}

func NewAuthHandler(cfg config.Config, users *repository.UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users}
}

// ----- DTOs -----

type signupReq struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type authResp struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// Signup creates a user record and returns a fresh session token.
//
// Emails are compared byte-for-byte: addresses differing only in case are
// distinct accounts.  No format or strength validation is applied beyond
// field presence.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing required fields"})
	}

	// Hash before touching the store so slow bcrypt work never runs inside
	// the store's critical section.
	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		log.Printf("signup: hash failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creating user"})
	}

	u, err := h.Users.Create(req.FullName, req.Email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "User already exists"})
		}
		log.Printf("signup: store insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creating user"})
	}

	token, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, h.Cfg.TokenTTL)
	if err != nil {
		log.Printf("signup: token sign failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error creating user"})
	}

	return c.JSON(http.StatusOK, authResp{Token: token, User: u.Summary()})
}

// Login verifies credentials and returns a freshly signed token.  An unknown
// email and a wrong password produce the identical response so the endpoint
// never reveals whether an account exists.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing email or password"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing email or password"})
	}

	u, err := h.Users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
		}
		log.Printf("login: store lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error logging in"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid credentials"})
	}

	token, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, h.Cfg.TokenTTL)
	if err != nil {
		log.Printf("login: token sign failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Error logging in"})
	}

	return c.JSON(http.StatusOK, authResp{Token: token, User: u.Summary()})
}

// Validate checks the bearer token and returns the owning user's summary.
// Every verification failure, including a token whose user no longer exists,
// collapses into the single "Invalid token" response.
func (h *AuthHandler) Validate(c echo.Context) error {
	raw, ok := bearerToken(c.Request().Header.Get("Authorization"))
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "No token provided"})
	}

	userID, err := utils.ParseSessionToken(h.Cfg.JWTSecret, raw)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
	}

	u, err := h.Users.GetByID(userID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
	}
	return c.JSON(http.StatusOK, u.Summary())
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>"
// header.  The second field after the first space is the token, whatever the
// scheme word says; a header with no second field carries no token.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
