package imagecache

import (
	"context"
	"image"
	"vollmed-client/internal/pkg/constvars"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

// LRUStore keeps decoded images in memory and evicts the least recently used one at capacity.
type LRUStore struct {
	cache *lru.Cache[string, image.Image]
	log   *zap.Logger
}

func NewLRUStore(size int, logger *zap.Logger) (*LRUStore, error) {
	if size <= 0 {
		size = constvars.DefaultImageCacheSize
	}

	cache, err := lru.New[string, image.Image](size)
	if err != nil {
		logger.Error("imagecache.NewLRUStore error creating cache",
			zap.Int("size", size),
			zap.Error(err),
		)
		return nil, err
	}

	return &LRUStore{
		cache: cache,
		log:   logger,
	}, nil
}

func (s *LRUStore) Get(ctx context.Context, key string) (image.Image, bool) {
	img, ok := s.cache.Get(key)
	s.log.Debug("LRUStore.Get",
		zap.String(constvars.LoggingImageURLKey, key),
		zap.Bool(constvars.LoggingCacheHitKey, ok),
		zap.String(constvars.LoggingCacheTierKey, constvars.CacheTierMemory),
	)
	return img, ok
}

func (s *LRUStore) Set(ctx context.Context, key string, img image.Image) {
	if img == nil {
		return
	}
	if evicted := s.cache.Add(key, img); evicted {
		s.log.Debug("LRUStore.Set evicted oldest entry",
			zap.Int("size", s.cache.Len()),
		)
	}
}

func (s *LRUStore) Len() int {
	return s.cache.Len()
}

func (s *LRUStore) Purge() {
	s.cache.Purge()
}
