package handler

import (
	"net/http"
	"strings"
	"testing"

	"reelhouse/internal/domain/entity"
	mockUsecase "reelhouse/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Request limits mirror the column sizes so oversized input is a 400, never a store error.
func TestRequestLimits(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "alice"}

	tests := []struct {
		name   string
		target string
		body   string
		accept bool
		field  string
	}{
		{
			name:   "favorite title at column size",
			target: "/favorites",
			body:   `{"mediaId":"550","mediaType":"movie","title":"` + strings.Repeat("a", 255) + `"}`,
			accept: true,
		},
		{
			name:   "favorite title over column size",
			target: "/favorites",
			body:   `{"mediaId":"550","mediaType":"movie","title":"` + strings.Repeat("a", 256) + `"}`,
			field:  "title",
		},
		{
			name:   "favorite poster path over column size",
			target: "/favorites",
			body:   `{"mediaId":"550","mediaType":"movie","posterPath":"/` + strings.Repeat("p", 255) + `"}`,
			field:  "posterPath",
		},
		{
			name:   "comment media id at column size",
			target: "/comments/" + strings.Repeat("9", 64),
			body:   `{"mediaType":"tv","content":"great"}`,
			accept: true,
		},
		{
			name:   "comment media id over column size",
			target: "/comments/" + strings.Repeat("9", 65),
			body:   `{"mediaType":"tv","content":"great"}`,
			field:  "id",
		},
		{
			name:   "contact email over column size",
			target: "/contact",
			body:   `{"name":"Carol","email":"` + strings.Repeat("c", 250) + `@example.com","message":"hi"}`,
			field:  "email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newLimitsEcho(t, user, tt.accept)

			rec := doJSON(e, http.MethodPost, tt.target, tt.body)

			if tt.accept {
				assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

				return
			}

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec, nil)
			require.Len(t, env.Errors, 1)
			assert.Equal(t, "VALIDATION_FAILED", env.Errors[0].Code)
			assert.Equal(t, tt.field, env.Errors[0].Field)
		})
	}
}

// newLimitsEcho mounts the write endpoints over mocks that only expect a call when the
// request is meant to pass validation.
func newLimitsEcho(t *testing.T, user *entity.User, accept bool) *echo.Echo {
	t.Helper()

	favorites := mockUsecase.NewMockFavoriteUsecase(t)
	comments := mockUsecase.NewMockCommentUsecase(t)
	contacts := mockUsecase.NewMockContactUsecase(t)

	if accept {
		favorites.EXPECT().AddFavorite(mock.Anything, user.ID, mock.Anything).
			Return(&entity.Favorite{ID: uuid.New()}, nil).Maybe()
		comments.EXPECT().AddComment(mock.Anything, user, mock.Anything).
			Return(&entity.Comment{ID: uuid.New()}, nil).Maybe()
	}

	e := newTestEcho()
	e.POST("/favorites", NewFavoriteHandler(favorites, newDiscardLogger()).AddFavorite, asUser(user))
	e.POST("/comments/:id", NewCommentHandler(comments, newDiscardLogger()).AddComment, asUser(user))
	e.POST("/contact", NewContactHandler(contacts).Submit)

	return e
}
