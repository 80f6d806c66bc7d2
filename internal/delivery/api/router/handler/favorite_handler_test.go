package handler

import (
	"net/http"
	"testing"

	"reelhouse/internal/domain/entity"
	domainerrors "reelhouse/internal/domain/errors"
	mockUsecase "reelhouse/internal/mocks/usecase"
	"reelhouse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFavoriteEcho(t *testing.T, user *entity.User) (*echo.Echo, *mockUsecase.MockFavoriteUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockFavoriteUsecase(t)
	h := NewFavoriteHandler(uc, newDiscardLogger())

	e := newTestEcho()
	g := e.Group("/favorites", asUser(user))
	g.GET("", h.ListFavorites)
	g.POST("", h.AddFavorite)
	g.DELETE("/:id", h.RemoveFavorite)

	return e, uc
}

func TestFavoriteHandler(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice"}

	t.Run("add", func(t *testing.T) {
		e, uc := newFavoriteEcho(t, user)
		uc.EXPECT().AddFavorite(mock.Anything, user.ID, &usecase.AddFavoriteInput{
			MediaID: "550", MediaType: entity.MediaTypeMovie, Title: "Fight Club", PosterPath: "/p.jpg",
		}).Return(&entity.Favorite{ID: uuid.New(), UserID: user.ID, MediaID: "550", MediaType: entity.MediaTypeMovie}, nil).Once()

		rec := doJSON(e, http.MethodPost, "/favorites", `{"mediaId":"550","mediaType":"movie","title":"Fight Club","posterPath":"/p.jpg"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var fav entity.Favorite
		decodeEnvelope(t, rec, &fav)
		assert.Equal(t, "550", fav.MediaID)
	})

	t.Run("add rejects unknown media type", func(t *testing.T) {
		e, _ := newFavoriteEcho(t, user)

		rec := doJSON(e, http.MethodPost, "/favorites", `{"mediaId":"550","mediaType":"book"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec, nil)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "mediaType", env.Errors[0].Field)
	})

	t.Run("add duplicate", func(t *testing.T) {
		e, uc := newFavoriteEcho(t, user)
		uc.EXPECT().AddFavorite(mock.Anything, user.ID, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrFavoriteAlreadyExists)).Once()

		rec := doJSON(e, http.MethodPost, "/favorites", `{"mediaId":"550","mediaType":"movie"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"FAVORITE_ALREADY_EXISTS"}, errorCodes(decodeEnvelope(t, rec, nil)))
	})

	t.Run("list", func(t *testing.T) {
		e, uc := newFavoriteEcho(t, user)
		uc.EXPECT().ListFavorites(mock.Anything, user.ID).
			Return([]*entity.Favorite{{MediaID: "1"}, {MediaID: "2"}}, nil).Once()

		rec := doJSON(e, http.MethodGet, "/favorites", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		var favs []entity.Favorite
		decodeEnvelope(t, rec, &favs)
		assert.Len(t, favs, 2)
	})

	t.Run("remove missing", func(t *testing.T) {
		e, uc := newFavoriteEcho(t, user)
		uc.EXPECT().RemoveFavorite(mock.Anything, user.ID, "550").
			Return(nil, errors.WithStack(domainerrors.ErrFavoriteNotFound)).Once()

		rec := doJSON(e, http.MethodDelete, "/favorites/550", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
