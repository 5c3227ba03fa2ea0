package contracts

import (
	"context"
	"image"
)

type ImageStore interface {
	Get(ctx context.Context, key string) (image.Image, bool)
	Set(ctx context.Context, key string, img image.Image)
	Len() int
}

type ImageFetcher interface {
	FetchImage(ctx context.Context, rawURL string) image.Image
	FetchImageResult(ctx context.Context, rawURL string) (image.Image, error)
}
