package impl

import (
	"context"
	"testing"

	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"
	"reelhouse/internal/domain/repository"
	mockRepo "reelhouse/internal/mocks/repository"
	mockSvc "reelhouse/internal/mocks/service"
	"reelhouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the user and issues a token", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil).Once()
		fx.userRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil).Once()
		fx.hasher.EXPECT().Hash("password1").Return("hashed", nil).Once()

		var createdID uuid.UUID
		fx.userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "alice" && u.Email == "alice@example.com" && u.PasswordHash == "hashed"
		})).RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = uuid.New()
			createdID = u.ID

			return nil
		}).Once()
		fx.tokenService.EXPECT().Issue(mock.AnythingOfType("uuid.UUID")).Return("signed-token", nil).Once()

		out, err := fx.service.Register(ctx, &usecase.RegisterInput{
			Username: " alice ",
			Email:    "Alice@Example.com",
			Password: "password1",
		})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", out.Token)
		assert.Equal(t, createdID, out.User.ID)
		assert.Empty(t, out.User.PasswordHash)
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "alice", Email: "  "})

		assert.ErrorIs(t, err, domainerrors.ErrMissingFields)
	})

	t.Run("email already registered", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(true, nil).Once()

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{
			Username: "alice2",
			Email:    "alice@example.com",
			Password: "password1",
		})

		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	})

	t.Run("username taken", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().ExistsByEmail(ctx, "bob@example.com").Return(false, nil).Once()
		fx.userRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(true, nil).Once()

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{
			Username: "alice",
			Email:    "bob@example.com",
			Password: "password1",
		})

		assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	})

	t.Run("store constraint wins a race", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil).Once()
		fx.userRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil).Once()
		fx.hasher.EXPECT().Hash("password1").Return("hashed", nil).Once()
		fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.WithStack(domainerrors.ErrEmailTaken)).Once()

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password1",
		})

		assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	})

	t.Run("hash failure", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().ExistsByEmail(ctx, "alice@example.com").Return(false, nil).Once()
		fx.userRepo.EXPECT().ExistsByUsername(ctx, "alice").Return(false, nil).Once()
		fx.hasher.EXPECT().Hash("password1").Return("", errors.New("cost too high")).Once()

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password1",
		})

		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.User{ID: userID, Username: "alice", Email: "alice@example.com", PasswordHash: "hashed"}

	t.Run("valid credentials", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(stored, nil).Once()
		fx.hasher.EXPECT().Check("password1", "hashed").Return(true).Once()
		fx.tokenService.EXPECT().Issue(userID).Return("signed-token", nil).Once()

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ALICE@example.com", Password: "password1"})

		require.NoError(t, err)
		assert.Equal(t, "signed-token", out.Token)
		assert.Equal(t, userID, out.User.ID)
		assert.Empty(t, out.User.PasswordHash)
		assert.Equal(t, "hashed", stored.PasswordHash, "stored record must not be mutated")
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound).Once()
		fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(stored, nil).Once()
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false).Once()

		_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "password1"})
		_, wrongErr := fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})

		require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
		require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})

	t.Run("store failure is not reported as bad credentials", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").
			Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "find user")).Once()

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "password1"})

		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("token issue failure", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(stored, nil).Once()
		fx.hasher.EXPECT().Check("password1", "hashed").Return(true).Once()
		fx.tokenService.EXPECT().Issue(userID).Return("", errors.New("boom")).Once()

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "password1"})

		assert.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
	})
}

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByID(ctx, userID).
			Return(&entity.User{ID: userID, Username: "alice", PasswordHash: "leak"}, nil).Once()

		user, err := fx.service.GetProfile(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound).Once()

		_, err := fx.service.GetProfile(ctx, userID)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}
