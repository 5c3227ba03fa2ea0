package imagecache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"image"
	"image/png"
	"time"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"
	"vollmed-client/internal/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore shares images between processes as PNG bytes with a TTL.
// Redis failures are logged and treated as misses.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		log:    logger,
	}
}

func redisKey(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))
	return constvars.ImageCacheRedisKeyPrefix + hex.EncodeToString(sum[:])
}

func (s *RedisStore) Get(ctx context.Context, key string) (image.Image, bool) {
	raw, err := s.client.Get(ctx, redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		s.log.Warn("RedisStore.Get error reading image",
			append(utils.ErrorFields(exceptions.ErrRedisGet(err)),
				zap.String(constvars.LoggingImageURLKey, key),
			)...,
		)
		return nil, false
	}

	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		s.log.Warn("RedisStore.Get error decoding cached image",
			append(utils.ErrorFields(exceptions.ErrDecodeImage(err)),
				zap.String(constvars.LoggingImageURLKey, key),
			)...,
		)
		return nil, false
	}

	s.log.Debug("RedisStore.Get",
		zap.String(constvars.LoggingImageURLKey, key),
		zap.Bool(constvars.LoggingCacheHitKey, true),
		zap.String(constvars.LoggingCacheTierKey, constvars.CacheTierRedis),
	)
	return img, true
}

func (s *RedisStore) Set(ctx context.Context, key string, img image.Image) {
	if img == nil {
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		s.log.Warn("RedisStore.Set error encoding image",
			append(utils.ErrorFields(exceptions.ErrEncodeImage(err)),
				zap.String(constvars.LoggingImageURLKey, key),
			)...,
		)
		return
	}

	err := s.client.Set(ctx, redisKey(key), buf.Bytes(), s.ttl).Err()
	if err != nil {
		s.log.Warn("RedisStore.Set error writing image",
			append(utils.ErrorFields(exceptions.ErrRedisSet(err)),
				zap.String(constvars.LoggingImageURLKey, key),
			)...,
		)
	}
}

// Len reports the number of cached images under the key prefix. Errors count as zero.
func (s *RedisStore) Len() int {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	count := 0
	iter := s.client.Scan(ctx, 0, constvars.ImageCacheRedisKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		s.log.Warn("RedisStore.Len error scanning keys", utils.ErrorFields(exceptions.ErrRedisGet(err))...)
		return 0
	}
	return count
}
