package imagecache

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/exceptions"
	"vollmed-client/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Options struct {
	Timeout     time.Duration
	UserAgent   string
	Placeholder image.Image
	// HTTPClient replaces the default client; its Timeout is left untouched.
	HTTPClient *http.Client
}

// Fetcher loads specialist images. Concurrent requests for one URL share a single download.
type Fetcher struct {
	HTTPClient  *http.Client
	Store       contracts.ImageStore
	Placeholder image.Image
	UserAgent   string
	Log         *zap.Logger

	group singleflight.Group
}

func NewFetcher(opts Options, store contracts.ImageStore, logger *zap.Logger) *Fetcher {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	placeholder := opts.Placeholder
	if placeholder == nil {
		placeholder = DefaultPlaceholder()
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = constvars.DefaultUserAgent
	}

	return &Fetcher{
		HTTPClient:  httpClient,
		Store:       store,
		Placeholder: placeholder,
		UserAgent:   userAgent,
		Log:         logger,
	}
}

// FetchImage never fails: any problem yields the placeholder.
func (f *Fetcher) FetchImage(ctx context.Context, rawURL string) image.Image {
	img, err := f.FetchImageResult(ctx, rawURL)
	if err != nil {
		f.Log.Warn("Fetcher.FetchImage using placeholder",
			append(utils.ErrorFields(err),
				zap.String(constvars.LoggingImageURLKey, rawURL),
			)...,
		)
		return f.Placeholder
	}
	return img
}

func (f *Fetcher) FetchImageResult(ctx context.Context, rawURL string) (image.Image, error) {
	if err := validateImageURL(rawURL); err != nil {
		return nil, err
	}

	if img, ok := f.Store.Get(ctx, rawURL); ok {
		f.Log.Debug("Fetcher.FetchImageResult cache hit",
			zap.String(constvars.LoggingImageURLKey, rawURL),
		)
		return img, nil
	}

	result, err, shared := f.group.Do(rawURL, func() (interface{}, error) {
		img, err := f.download(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		f.Store.Set(ctx, rawURL, img)
		return img, nil
	})
	if err != nil {
		return nil, err
	}

	f.Log.Debug("Fetcher.FetchImageResult succeeded",
		zap.String(constvars.LoggingImageURLKey, rawURL),
		zap.Bool("shared", shared),
	)
	return result.(image.Image), nil
}

func validateImageURL(rawURL string) error {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return exceptions.ErrInvalidImageURL(err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return exceptions.ErrInvalidImageURL(nil)
	}
	return nil
}

func (f *Fetcher) download(ctx context.Context, rawURL string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, rawURL, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderUserAgent, f.UserAgent)

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrRequestTimeout(err)
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, exceptions.ErrRequestTimeout(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, exceptions.ErrUnexpectedStatusCode(resp.StatusCode, constvars.ResourceImage)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, constvars.MaxImageBytes+1))
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	if len(raw) > constvars.MaxImageBytes {
		return nil, exceptions.ErrImageTooLarge(constvars.MaxImageBytes)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, exceptions.ErrDecodeImage(err)
	}
	return img, nil
}
