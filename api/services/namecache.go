package services

import (
	"context"
	"sync"

	"github.com/forum-civic/forum-services/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentLookups = 8

// NameCache maps user ids to display names. It never evicts.
type NameCache struct {
	mu    sync.RWMutex
	names map[string]string
}

func NewNameCache() *NameCache {
	return &NameCache{names: make(map[string]string)}
}

func (c *NameCache) Get(uid string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.names[uid]
	return name, ok
}

func (c *NameCache) Set(uid, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[uid] = name
}

func (c *NameCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.names)
}

// UserLookup fetches a single profile.
type UserLookup interface {
	GetUser(uid string) (*models.UserInfo, error)
}

// NameResolver fills the cache from the store on a miss.
type NameResolver struct {
	Cache *NameCache
	Users UserLookup
}

func NewNameResolver(cache *NameCache, users UserLookup) *NameResolver {
	return &NameResolver{Cache: cache, Users: users}
}

// Resolve returns a display name for every uid. Misses are looked up
// concurrently and Resolve waits for all of them. Users that cannot be found
// resolve to models.UnknownUserName and are not cached.
func (nr *NameResolver) Resolve(ctx context.Context, uids []string) (map[string]string, error) {
	logger := zerolog.Ctx(ctx)

	names := make(map[string]string, len(uids))
	var misses []string
	for _, uid := range uids {
		if _, seen := names[uid]; seen {
			continue
		}
		if name, ok := nr.Cache.Get(uid); ok {
			names[uid] = name
			continue
		}
		names[uid] = models.UnknownUserName
		misses = append(misses, uid)
	}

	if len(misses) == 0 {
		return names, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)

	for _, uid := range misses {
		uid := uid
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			user, err := nr.Users.GetUser(uid)
			if err != nil {
				logger.Warn().Err(err).Str("user_id", uid).Msg("Failed to look up user name")
				return nil
			}
			if user == nil {
				return nil
			}

			name := user.DisplayName()
			nr.Cache.Set(uid, name)

			mu.Lock()
			names[uid] = name
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}

// ApplyNames sets the author name on every post.
func (nr *NameResolver) ApplyNames(ctx context.Context, posts []models.Post) error {
	uids := make([]string, 0, len(posts))
	for _, p := range posts {
		uids = append(uids, p.UserID)
	}

	names, err := nr.Resolve(ctx, uids)
	if err != nil {
		return err
	}

	for i := range posts {
		posts[i].UserName = names[posts[i].UserID]
	}
	return nil
}
