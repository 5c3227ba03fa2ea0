package imagecache

import (
	"context"
	"image"
	"vollmed-client/internal/app/contracts"
)

// TieredStore reads memory first, then the shared tier, copying shared hits back into memory.
type TieredStore struct {
	Memory contracts.ImageStore
	Shared contracts.ImageStore
}

func NewTieredStore(memory, shared contracts.ImageStore) contracts.ImageStore {
	if shared == nil {
		return memory
	}
	return &TieredStore{
		Memory: memory,
		Shared: shared,
	}
}

func (s *TieredStore) Get(ctx context.Context, key string) (image.Image, bool) {
	if img, ok := s.Memory.Get(ctx, key); ok {
		return img, true
	}
	img, ok := s.Shared.Get(ctx, key)
	if !ok {
		return nil, false
	}
	s.Memory.Set(ctx, key, img)
	return img, true
}

func (s *TieredStore) Set(ctx context.Context, key string, img image.Image) {
	s.Memory.Set(ctx, key, img)
	s.Shared.Set(ctx, key, img)
}

func (s *TieredStore) Len() int {
	return s.Memory.Len()
}
