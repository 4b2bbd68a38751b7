// Package store holds the repository objects backing the API. Repositories
// are constructed once at startup and passed to the handlers by reference,
// there is no package-level database state.
package store

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// queryTimeout bounds every store access. A request that cannot reach the
// database in time fails with ErrStoreTimeout instead of blocking.
const queryTimeout = 5 * time.Second

type Stores struct {
	Users    *UserStore
	Articles *ArticleStore
	Comments *CommentStore
}

func New(db *gorm.DB, cache *LikeCache) *Stores {
	articleLocks := &keyedMutex{}
	return &Stores{
		Users:    &UserStore{db: db},
		Articles: &ArticleStore{db: db, locks: articleLocks, cache: cache},
		Comments: &CommentStore{db: db},
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}
