// Package memory keeps every record in process memory. It backs the "memory" storage
// driver used for local development and tests; nothing survives a restart.
package memory

import (
	"sync"
	"time"

	"reelhouse/internal/domain/entity"

	"github.com/google/uuid"
)

type favoriteKey struct {
	userID  uuid.UUID
	mediaID string
}

type storedComment struct {
	comment *entity.Comment
	seq     uint64
}

// Store holds all collections behind a single lock so uniqueness checks and inserts are atomic.
type Store struct {
	mu sync.RWMutex

	users      map[uuid.UUID]*entity.User
	byEmail    map[string]uuid.UUID
	byUsername map[string]uuid.UUID

	favorites     []*entity.Favorite
	favoriteIndex map[favoriteKey]*entity.Favorite

	comments map[uuid.UUID]*storedComment
	seq      uint64

	contacts []*entity.ContactMessage

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:         make(map[uuid.UUID]*entity.User),
		byEmail:       make(map[string]uuid.UUID),
		byUsername:    make(map[string]uuid.UUID),
		favoriteIndex: make(map[favoriteKey]*entity.Favorite),
		comments:      make(map[uuid.UUID]*storedComment),
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) nextSeq() uint64 {
	s.seq++

	return s.seq
}

func copyUser(u *entity.User) *entity.User {
	clone := *u

	return &clone
}

func copyFavorite(f *entity.Favorite) *entity.Favorite {
	clone := *f

	return &clone
}

func copyComment(c *entity.Comment, username string) *entity.Comment {
	clone := *c
	clone.Username = username
	clone.Likes = append(make([]uuid.UUID, 0, len(c.Likes)), c.Likes...)
	clone.Dislikes = append(make([]uuid.UUID, 0, len(c.Dislikes)), c.Dislikes...)

	return &clone
}
