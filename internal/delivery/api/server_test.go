package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"reelhouse/config"
	apimiddleware "reelhouse/internal/delivery/api/middleware"
	"reelhouse/internal/delivery/api/router"
	"reelhouse/internal/delivery/api/router/handler"
	deliverycontext "reelhouse/internal/delivery/context"
	"reelhouse/internal/infra/auth"
	"reelhouse/internal/infra/persistence/memory"
	"reelhouse/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Errors  []errorInfo     `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

type errorInfo struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

type testClient struct {
	t    *testing.T
	echo *echo.Echo
}

func (tc *testClient) do(method, target, body, token string) (*httptest.ResponseRecorder, envelope) {
	tc.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	tc.echo.ServeHTTP(rec, req)

	var env envelope
	require.NoError(tc.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func (tc *testClient) register(username, email, password string) string {
	tc.t.Helper()

	rec, env := tc.do(http.MethodPost, "/api/users/register",
		`{"username":"`+username+`","email":"`+email+`","password":"`+password+`"}`, "")
	require.Equal(tc.t, http.StatusCreated, rec.Code, rec.Body.String())

	var data handler.AuthResponse
	require.NoError(tc.t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(tc.t, data.Token)

	return data.Token
}

// newTestStack builds the real HTTP stack over the in-memory store.
func newTestStack(t *testing.T, opts ...func(*config.Config)) *testClient {
	t.Helper()

	cfg := &config.Config{
		HTTP:      config.HTTPConfig{MaxRequestBodySize: "100KB"},
		SecretKey: config.SecretKeyConfig{Access: "e2e-secret"},
		Auth: &config.AuthConfig{
			TokenTTL:   time.Hour,
			BcryptCost: bcrypt.MinCost,
			Cookie:     config.CookieConfig{Name: "accessToken"},
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := memory.NewStore()
	users := memory.NewUserRepository(store)

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userUC := impl.NewUserService(impl.UserServiceParams{
		UserRepo:     users,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenSvc,
		Logger:       logger,
	})

	e := NewEcho(cfg, logger, router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			Usecase:      userUC,
			TokenService: tokenSvc,
			Config:       cfg,
			Logger:       logger,
		}),
		FavoriteHandler: handler.NewFavoriteHandler(impl.NewFavoriteService(memory.NewFavoriteRepository(store), logger), logger),
		CommentHandler:  handler.NewCommentHandler(impl.NewCommentService(memory.NewCommentRepository(store), logger), logger),
		ContactHandler:  handler.NewContactHandler(impl.NewContactService(memory.NewContactRepository(store), logger)),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(tokenSvc, users, cfg, logger),
		Config:          cfg,
	})

	return &testClient{t: t, echo: e}
}

func TestEndToEnd_AliceScenario(t *testing.T) {
	tc := newTestStack(t)

	aliceToken := tc.register("alice", "alice@example.com", "wonderland")

	// Duplicate email, different case.
	rec, env := tc.do(http.MethodPost, "/api/users/register",
		`{"username":"alice2","email":"ALICE@example.com","password":"x"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "EMAIL_TAKEN", env.Errors[0].Code)

	// Login round-trip yields a token the gate accepts.
	rec, env = tc.do(http.MethodPost, "/api/users/login", `{"email":"alice@example.com","password":"wonderland"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, string(env.Data), "wonderland")
	assert.NotContains(t, string(env.Data), "$2a$")
	var login handler.AuthResponse
	require.NoError(t, json.Unmarshal(env.Data, &login))

	rec, env = tc.do(http.MethodGet, "/api/users/profile", "", login.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"username":"alice"`)

	// Favorites.
	favBody := `{"mediaId":"550","mediaType":"movie","title":"Fight Club","posterPath":"/p.jpg"}`
	rec, _ = tc.do(http.MethodPost, "/api/favorites", favBody, aliceToken)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env = tc.do(http.MethodPost, "/api/favorites", favBody, aliceToken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "FAVORITE_ALREADY_EXISTS", env.Errors[0].Code)

	rec, env = tc.do(http.MethodGet, "/api/favorites", "", aliceToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var favorites []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, "550", favorites[0]["mediaId"])

	// Comments: bob cannot delete alice's comment.
	rec, env = tc.do(http.MethodPost, "/api/comments/550", `{"mediaType":"movie","content":"first rule"}`, aliceToken)
	require.Equal(t, http.StatusCreated, rec.Code)
	var comment struct {
		ID       string   `json:"id"`
		Username string   `json:"username"`
		Likes    []string `json:"likes"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &comment))
	assert.Equal(t, "alice", comment.Username)
	assert.NotNil(t, comment.Likes)

	bobToken := tc.register("bob", "bob@example.com", "builder")

	rec, env = tc.do(http.MethodDelete, "/api/comments/"+comment.ID, "", bobToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "COMMENT_FORBIDDEN", env.Errors[0].Code)

	rec, env = tc.do(http.MethodGet, "/api/comments/550", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), comment.ID)

	rec, _ = tc.do(http.MethodDelete, "/api/comments/"+comment.ID, "", aliceToken)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = tc.do(http.MethodDelete, "/api/comments/"+comment.ID, "", aliceToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Removing the favorite returns it; a second removal is a 404.
	rec, env = tc.do(http.MethodDelete, "/api/favorites/550", "", aliceToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"mediaId":"550"`)

	rec, _ = tc.do(http.MethodDelete, "/api/favorites/550", "", aliceToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEndToEnd_LoginFailuresAreIndistinguishable(t *testing.T) {
	tc := newTestStack(t)
	tc.register("alice", "alice@example.com", "wonderland")

	unknownRec, _ := tc.do(http.MethodPost, "/api/users/login", `{"email":"nobody@example.com","password":"wonderland"}`, "")
	wrongRec, _ := tc.do(http.MethodPost, "/api/users/login", `{"email":"alice@example.com","password":"looking-glass"}`, "")

	assert.Equal(t, http.StatusUnauthorized, unknownRec.Code)
	assert.Equal(t, unknownRec.Code, wrongRec.Code)
	assert.JSONEq(t, unknownRec.Body.String(), wrongRec.Body.String())
}

func TestEndToEnd_AuthGate(t *testing.T) {
	tc := newTestStack(t)

	rec, env := tc.do(http.MethodGet, "/api/favorites", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_MISSING", env.Errors[0].Code)

	rec, env = tc.do(http.MethodGet, "/api/favorites", "", "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", env.Errors[0].Code)

	// Cookie transport.
	token := tc.register("carol", "carol@example.com", "pw")
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	cookieRec := httptest.NewRecorder()
	tc.echo.ServeHTTP(cookieRec, req)
	assert.Equal(t, http.StatusOK, cookieRec.Code)
}

func TestEndToEnd_EnvelopeAndRequestID(t *testing.T) {
	tc := newTestStack(t)

	rec, env := tc.do(http.MethodGet, "/api/does-not-exist", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "NOT_FOUND", env.Errors[0].Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec, env = tc.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec, _ = tc.do(http.MethodPost, "/api/contact", `{"name":"Dave","email":"dave@example.com","message":"hello"}`, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestEndToEnd_ConcurrentFavoriteAdd(t *testing.T) {
	tc := newTestStack(t)
	token := tc.register("alice", "alice@example.com", "wonderland")

	const workers = 16
	codes := make([]int, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodPost, "/api/favorites",
				strings.NewReader(`{"mediaId":"603","mediaType":"movie","title":"The Matrix"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
			rec := httptest.NewRecorder()
			tc.echo.ServeHTTP(rec, req)
			codes[i] = rec.Code
		}()
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		if code == http.StatusCreated {
			created++
		} else {
			assert.Equal(t, http.StatusBadRequest, code)
		}
	}
	assert.Equal(t, 1, created)

	_, env := tc.do(http.MethodGet, "/api/favorites", "", token)
	var favorites []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &favorites))
	assert.Len(t, favorites, 1)
}

func TestEndToEnd_CredentialRateLimit(t *testing.T) {
	tc := newTestStack(t, func(cfg *config.Config) {
		cfg.Auth.RateLimit = &config.RateLimitConfig{Enabled: true, Rate: 0.001, Burst: 2}
	})

	body := `{"email":"nobody@example.com","password":"whatever"}`
	for range 2 {
		rec, _ := tc.do(http.MethodPost, "/api/users/login", body, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}

	rec, env := tc.do(http.MethodPost, "/api/users/login", body, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "RATE_LIMITED", env.Errors[0].Code)

	// Other routes are not throttled.
	rec, _ = tc.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEndToEnd_RegisterPasswordByteLimit(t *testing.T) {
	tc := newTestStack(t)

	// 40 runes, 80 bytes: over bcrypt's input limit.
	rec, env := tc.do(http.MethodPost, "/api/users/register",
		`{"username":"zoe","email":"zoe@example.com","password":"`+strings.Repeat("é", 40)+`"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "VALIDATION_FAILED", env.Errors[0].Code)
	assert.Equal(t, "password", env.Errors[0].Field)

	// 36 runes, exactly 72 bytes.
	token := tc.register("zoe", "zoe@example.com", strings.Repeat("é", 36))
	assert.NotEmpty(t, token)
}
