package memory

import (
	"cmp"
	"context"
	"slices"

	"reelhouse/internal/domain/entity"
	"reelhouse/internal/domain/repository"

	"github.com/google/uuid"
)

type commentRepository struct {
	store *Store
}

// NewCommentRepository creates an in-memory repository.CommentRepository.
func NewCommentRepository(store *Store) repository.CommentRepository {
	return &commentRepository{store: store}
}

func (repo *commentRepository) Create(_ context.Context, comment *entity.Comment) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	now := repo.store.now()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = now
	}
	comment.UpdatedAt = now
	comment.SetReactions(nil)

	repo.store.comments[comment.ID] = &storedComment{
		comment: copyComment(comment, ""),
		seq:     repo.store.nextSeq(),
	}

	return nil
}

func (repo *commentRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	stored, ok := repo.store.comments[id]
	if !ok {
		return nil, repository.ErrCommentNotFound
	}

	return copyComment(stored.comment, repo.usernameOf(stored.comment.UserID)), nil
}

// ListByMedia returns comments newest first; equal timestamps fall back to insertion order.
func (repo *commentRepository) ListByMedia(_ context.Context, mediaID string) ([]*entity.Comment, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	matched := make([]*storedComment, 0)
	for _, stored := range repo.store.comments {
		if stored.comment.MediaID == mediaID {
			matched = append(matched, stored)
		}
	}

	slices.SortFunc(matched, func(a, b *storedComment) int {
		if c := b.comment.CreatedAt.Compare(a.comment.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.seq, a.seq)
	})

	comments := make([]*entity.Comment, 0, len(matched))
	for _, stored := range matched {
		comments = append(comments, copyComment(stored.comment, repo.usernameOf(stored.comment.UserID)))
	}

	return comments, nil
}

func (repo *commentRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.comments[id]; !ok {
		return repository.ErrCommentNotFound
	}

	delete(repo.store.comments, id)

	return nil
}

// usernameOf must be called with the store lock held.
func (repo *commentRepository) usernameOf(userID uuid.UUID) string {
	if user, ok := repo.store.users[userID]; ok {
		return user.Username
	}

	return ""
}
