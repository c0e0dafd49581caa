package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora/content-studio/internal/config"
	"github.com/velora/content-studio/internal/repository"
	"github.com/velora/content-studio/internal/utils"
)

func newAuthHandler() *AuthHandler {
	cfg := config.Config{JWTSecret: "test-secret", BcryptCost: 10}
	return NewAuthHandler(cfg, repository.NewUserStore())
}

// invoke runs an echo handler against a synthetic request and returns the
// recorder.  Authorization, when non-empty, is attached verbatim.
func invoke(t *testing.T, fn echo.HandlerFunc, method, target, body, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, fn(c))
	return rec
}

type authBody struct {
	Token string `json:"token"`
	User  struct {
		ID       uint64 `json:"id"`
		FullName string `json:"fullName"`
		Email    string `json:"email"`
	} `json:"user"`
	Error string `json:"error"`
}

func decodeAuth(t *testing.T, rec *httptest.ResponseRecorder) authBody {
	t.Helper()
	var out authBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestSignupLoginValidate_Flow(t *testing.T) {
	h := newAuthHandler()

	// Register Ada.
	rec := invoke(t, h.Signup, http.MethodPost, "/api/auth/signup",
		`{"fullName":"Ada Lovelace","email":"ada@example.com","password":"s3cret!"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	signup := decodeAuth(t, rec)
	assert.NotEmpty(t, signup.Token)
	assert.Equal(t, uint64(1), signup.User.ID)
	assert.Equal(t, "Ada Lovelace", signup.User.FullName)
	assert.Equal(t, "ada@example.com", signup.User.Email)
	assert.NotContains(t, rec.Body.String(), "password")

	// Second registration with the same email fails and leaves one record.
	rec = invoke(t, h.Signup, http.MethodPost, "/api/auth/signup",
		`{"fullName":"Impostor","email":"ada@example.com","password":"different"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"User already exists"}`, rec.Body.String())
	assert.Equal(t, 1, h.Users.Count())

	// Wrong password.
	rec = invoke(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"ada@example.com","password":"wrong"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, rec.Body.String())

	// Correct password returns the same account with a working token.
	rec = invoke(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"ada@example.com","password":"s3cret!"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	login := decodeAuth(t, rec)
	assert.Equal(t, uint64(1), login.User.ID)

	for _, token := range []string{signup.Token, login.Token} {
		rec = invoke(t, h.Validate, http.MethodGet, "/api/auth/validate", "", "Bearer "+token)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, `{"id":1,"fullName":"Ada Lovelace","email":"ada@example.com"}`, rec.Body.String())
	}
}

func TestSignup_MissingFields(t *testing.T) {
	h := newAuthHandler()
	for _, body := range []string{
		`{}`,
		`{"fullName":"Ada"}`,
		`{"email":"ada@example.com","password":"pw"}`,
	} {
		rec := invoke(t, h.Signup, http.MethodPost, "/api/auth/signup", body, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
	}
	assert.Equal(t, 0, h.Users.Count())
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	h := newAuthHandler()
	rec := invoke(t, h.Signup, http.MethodPost, "/api/auth/signup",
		`{"fullName":"Ada","email":"ada@example.com","password":"s3cret!"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	unknown := invoke(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"nobody@example.com","password":"whatever"}`, "")
	wrongPw := invoke(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"ada@example.com","password":"wrong"}`, "")

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, unknown.Code, wrongPw.Code)
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestValidate_MissingToken(t *testing.T) {
	h := newAuthHandler()
	for _, header := range []string{"", "Bearer", "Bearer "} {
		rec := invoke(t, h.Validate, http.MethodGet, "/api/auth/validate", "", header)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.JSONEq(t, `{"error":"No token provided"}`, rec.Body.String())
	}
}

func TestValidate_InvalidToken(t *testing.T) {
	h := newAuthHandler()

	foreign, err := utils.NewSessionToken("some-other-secret", 1, 0)
	require.NoError(t, err)
	// Signed correctly, but the subject was never registered.
	vanished, err := utils.NewSessionToken(h.Cfg.JWTSecret, 99, 0)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":           "not-a-token",
		"foreign signature": foreign,
		"vanished user":     vanished,
	} {
		rec := invoke(t, h.Validate, http.MethodGet, "/api/auth/validate", "", "Bearer "+token)
		require.Equal(t, http.StatusUnauthorized, rec.Code, name)
		assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String(), name)
	}
}
