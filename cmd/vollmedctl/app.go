package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"vollmed-client/internal/app/config"
	"vollmed-client/internal/app/contracts"
	"vollmed-client/internal/app/drivers/database"
	"vollmed-client/internal/app/drivers/logger"
	"vollmed-client/internal/app/services/imagecache"
	"vollmed-client/internal/app/services/session"
	"vollmed-client/internal/app/services/webservice"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cliApp carries what every subcommand needs. Fields are filled by setup.
type cliApp struct {
	out io.Writer

	apiFlag       string
	tokenFlag     string
	tokenFileFlag string
	saveTokenFlag bool
	timeoutFlag   time.Duration

	internalConfig *config.InternalConfig
	driverConfig   *config.DriverConfig
	log            *zap.Logger
	redis          *redis.Client
	store          *session.Store
	service        contracts.WebService
	fetcher        *imagecache.Fetcher
}

func newCLIApp(out io.Writer) *cliApp {
	return &cliApp{out: out}
}

func (a *cliApp) setup(ctx context.Context) error {
	if a.internalConfig == nil {
		a.internalConfig = config.NewInternalConfig()
	}
	if a.driverConfig == nil {
		a.driverConfig = config.NewDriverConfig()
	}
	if a.log == nil {
		a.log = logger.NewZapLogger(a.driverConfig, a.internalConfig)
	}

	store, err := a.loadSession()
	if err != nil {
		return err
	}
	a.store = store

	baseUrl := a.internalConfig.API.BaseUrl
	if a.apiFlag != "" {
		baseUrl = a.apiFlag
	}
	timeout := time.Duration(a.internalConfig.API.RequestTimeoutInSeconds) * time.Second
	if a.timeoutFlag > 0 {
		timeout = a.timeoutFlag
	}

	service, err := webservice.NewWebService(webservice.Options{
		BaseUrl:   baseUrl,
		Timeout:   timeout,
		UserAgent: a.internalConfig.API.UserAgent,
	}, a.store, a.log)
	if err != nil {
		return err
	}
	a.service = service

	return nil
}

// setupImages is separate so commands that never touch images do not dial redis.
func (a *cliApp) setupImages(ctx context.Context) error {
	memory, err := imagecache.NewLRUStore(a.internalConfig.ImageCache.Size, a.log)
	if err != nil {
		return err
	}

	var store contracts.ImageStore = memory
	rdb, err := database.NewRedisClient(ctx, a.driverConfig, a.log)
	if err != nil {
		a.log.Warn("Redis unavailable, image cache stays in memory", zap.Error(err))
	} else if rdb != nil {
		a.redis = rdb
		ttl := time.Duration(a.internalConfig.ImageCache.TTLInMinutes) * time.Minute
		store = imagecache.NewTieredStore(memory, imagecache.NewRedisStore(rdb, ttl, a.log))
	}

	placeholder, err := imagecache.LoadPlaceholder(a.internalConfig.ImageCache.PlaceholderImagePath)
	if err != nil {
		a.log.Warn("Custom placeholder unreadable, using the bundled one", zap.Error(err))
		placeholder = imagecache.DefaultPlaceholder()
	}

	a.fetcher = imagecache.NewFetcher(imagecache.Options{
		Timeout:     time.Duration(a.internalConfig.ImageCache.RequestTimeoutInSeconds) * time.Second,
		UserAgent:   a.internalConfig.API.UserAgent,
		Placeholder: placeholder,
	}, store, a.log)
	return nil
}

func (a *cliApp) loadSession() (*session.Store, error) {
	if a.tokenFlag != "" {
		return session.NewStoreWithToken(a.tokenFlag), nil
	}
	if !a.saveTokenFlag {
		return session.NewStore(), nil
	}
	path, err := a.tokenFile()
	if err != nil {
		return nil, err
	}
	return session.LoadFromFile(path)
}

// saveSession persists the token after a successful command when --save-token is set.
func (a *cliApp) saveSession() error {
	if !a.saveTokenFlag || a.store == nil {
		return nil
	}
	path, err := a.tokenFile()
	if err != nil {
		return err
	}
	return a.store.SaveToFile(path)
}

// release closes whatever setup opened. It runs after every invocation, failed ones included.
func (a *cliApp) release(ctx context.Context) {
	if a.log != nil {
		a.log.Debug("vollmedctl releasing drivers", zap.Bool("redis", a.redis != nil))
	}
	bootstrap := config.Bootstrap{
		Redis:          a.redis,
		Logger:         a.log,
		InternalConfig: a.internalConfig,
		DriverConfig:   a.driverConfig,
	}
	if err := bootstrap.Shutdown(ctx); err != nil && a.log != nil {
		a.log.Warn("vollmedctl error releasing drivers", zap.Error(err))
	}
}

func (a *cliApp) tokenFile() (string, error) {
	if a.tokenFileFlag != "" {
		return a.tokenFileFlag, nil
	}
	if a.internalConfig != nil && a.internalConfig.App.TokenFile != "" {
		return a.internalConfig.App.TokenFile, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot locate config dir for the token file: %w", err)
	}
	return filepath.Join(dir, "vollmed", "token"), nil
}

func (a *cliApp) printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}
