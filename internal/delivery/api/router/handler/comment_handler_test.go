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
)

func newCommentEcho(t *testing.T, user *entity.User) (*echo.Echo, *mockUsecase.MockCommentUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockCommentUsecase(t)
	h := NewCommentHandler(uc, newDiscardLogger())

	e := newTestEcho()
	e.GET("/comments/:id", h.ListComments)
	e.POST("/comments/:id", h.AddComment, asUser(user))
	e.DELETE("/comments/:id", h.DeleteComment, asUser(user))

	return e, uc
}

func TestCommentHandler(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Username: "bob"}

	t.Run("add takes media id from the path", func(t *testing.T) {
		e, uc := newCommentEcho(t, user)
		uc.EXPECT().AddComment(mock.Anything, user, &usecase.AddCommentInput{
			MediaID: "1399", MediaType: entity.MediaTypeTV, Content: "winter is coming",
		}).Return(&entity.Comment{ID: uuid.New(), UserID: user.ID, Username: "bob", MediaID: "1399"}, nil).Once()

		rec := doJSON(e, http.MethodPost, "/comments/1399", `{"mediaType":"tv","content":"winter is coming"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var comment entity.Comment
		decodeEnvelope(t, rec, &comment)
		assert.Equal(t, "bob", comment.Username)
	})

	t.Run("add blank content", func(t *testing.T) {
		e, _ := newCommentEcho(t, user)

		rec := doJSON(e, http.MethodPost, "/comments/1399", `{"mediaType":"tv","content":"   "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"MISSING_FIELDS"}, errorCodes(decodeEnvelope(t, rec, nil)))
	})

	t.Run("list is public", func(t *testing.T) {
		e, uc := newCommentEcho(t, user)
		uc.EXPECT().ListComments(mock.Anything, "1399").Return([]*entity.Comment{}, nil).Once()

		rec := doJSON(e, http.MethodGet, "/comments/1399", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Comments retrieved successfully","errors":[],"data":[]}`, rec.Body.String())
	})

	t.Run("delete someone else's comment", func(t *testing.T) {
		e, uc := newCommentEcho(t, user)
		commentID := uuid.New()
		uc.EXPECT().DeleteComment(mock.Anything, commentID, user.ID).
			Return(errors.WithStack(domainerrors.ErrCommentForbidden)).Once()

		rec := doJSON(e, http.MethodDelete, "/comments/"+commentID.String(), "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("delete with malformed id", func(t *testing.T) {
		e, _ := newCommentEcho(t, user)

		rec := doJSON(e, http.MethodDelete, "/comments/not-a-uuid", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, []string{"COMMENT_NOT_FOUND"}, errorCodes(decodeEnvelope(t, rec, nil)))
	})
}
