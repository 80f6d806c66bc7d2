package handler

import (
	"net/http"
	"testing"
	"time"

	"reelhouse/config"
	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"
	mockSvc "reelhouse/internal/mocks/service"
	mockUsecase "reelhouse/internal/mocks/usecase"
	"reelhouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userHandlerFixtures struct {
	handler  *UserHandler
	uc       *mockUsecase.MockUserUsecase
	tokenSvc *mockSvc.MockTokenService
}

func createTestUserHandler(t *testing.T) userHandlerFixtures {
	t.Helper()

	uc := mockUsecase.NewMockUserUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	cfg := &config.Config{Auth: &config.AuthConfig{Cookie: config.CookieConfig{Name: "accessToken", SameSite: "strict"}}}

	return userHandlerFixtures{
		handler: NewUserHandler(UserHandlerParams{
			Usecase:      uc,
			TokenService: tokenSvc,
			Config:       cfg,
			Logger:       newDiscardLogger(),
		}),
		uc:       uc,
		tokenSvc: tokenSvc,
	}
}

func TestUserHandler_Register(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}

	t.Run("created with cookie", func(t *testing.T) {
		fx := createTestUserHandler(t)
		e := newTestEcho()
		e.POST("/register", fx.handler.Register)

		fx.uc.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Username: "alice", Email: "alice@example.com", Password: "password1",
		}).Return(&usecase.AuthOutput{Token: "tok", User: user}, nil).Once()
		fx.tokenSvc.EXPECT().TTL().Return(24 * time.Hour).Once()

		rec := doJSON(e, http.MethodPost, "/register", `{"username":"alice","email":"alice@example.com","password":"password1"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var data AuthResponse
		env := decodeEnvelope(t, rec, &data)
		assert.True(t, env.Success)
		assert.Equal(t, "tok", data.Token)
		assert.Equal(t, "alice", data.User.Username)
		assert.NotContains(t, rec.Body.String(), "password")

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "accessToken", cookies[0].Name)
		assert.Equal(t, "tok", cookies[0].Value)
		assert.Equal(t, 86400, cookies[0].MaxAge)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
	})

	t.Run("missing fields never reach the use case", func(t *testing.T) {
		fx := createTestUserHandler(t)
		e := newTestEcho()
		e.POST("/register", fx.handler.Register)

		rec := doJSON(e, http.MethodPost, "/register", `{"username":"alice"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec, nil)
		assert.False(t, env.Success)
		assert.Contains(t, errorCodes(env), "MISSING_FIELDS")
		assert.Len(t, env.Errors, 2)
	})

	t.Run("malformed json", func(t *testing.T) {
		fx := createTestUserHandler(t)
		e := newTestEcho()
		e.POST("/register", fx.handler.Register)

		rec := doJSON(e, http.MethodPost, "/register", `{"username":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"INVALID_INPUT"}, errorCodes(decodeEnvelope(t, rec, nil)))
	})

	t.Run("duplicate email", func(t *testing.T) {
		fx := createTestUserHandler(t)
		e := newTestEcho()
		e.POST("/register", fx.handler.Register)

		fx.uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrEmailTaken)).Once()

		rec := doJSON(e, http.MethodPost, "/register", `{"username":"alice2","email":"alice@example.com","password":"pw"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"EMAIL_TAKEN"}, errorCodes(decodeEnvelope(t, rec, nil)))
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("invalid credentials", func(t *testing.T) {
		fx := createTestUserHandler(t)
		e := newTestEcho()
		e.POST("/login", fx.handler.Login)

		fx.uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "alice@example.com", Password: "nope"}).
			Return(nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")).Once()

		rec := doJSON(e, http.MethodPost, "/login", `{"email":"alice@example.com","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec, nil)
		assert.Equal(t, domainerrors.ErrInvalidCredentials.Message(), env.Message)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestUserHandler(t)
		e := newTestEcho()
		e.POST("/login", fx.handler.Login)

		user := &entity.User{ID: uuid.New(), Username: "alice"}
		fx.uc.EXPECT().Login(mock.Anything, mock.Anything).Return(&usecase.AuthOutput{Token: "tok", User: user}, nil).Once()
		fx.tokenSvc.EXPECT().TTL().Return(time.Hour).Once()

		rec := doJSON(e, http.MethodPost, "/login", `{"email":"alice@example.com","password":"pw"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, rec.Result().Cookies(), 1)
		assert.Equal(t, 3600, rec.Result().Cookies()[0].MaxAge)
	})
}

func TestUserHandler_Logout(t *testing.T) {
	fx := createTestUserHandler(t)
	e := newTestEcho()
	e.POST("/logout", fx.handler.Logout)

	rec := doJSON(e, http.MethodPost, "/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "accessToken", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestUserHandler_GetProfile(t *testing.T) {
	fx := createTestUserHandler(t)
	current := &entity.User{ID: uuid.New(), Username: "alice"}
	e := newTestEcho()
	e.GET("/profile", fx.handler.GetProfile, asUser(current))

	fx.uc.EXPECT().GetProfile(mock.Anything, current.ID).
		Return(&entity.User{ID: current.ID, Username: "alice", Email: "alice@example.com"}, nil).Once()

	rec := doJSON(e, http.MethodGet, "/profile", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var user entity.User
	decodeEnvelope(t, rec, &user)
	assert.Equal(t, "alice@example.com", user.Email)
}
