package config

import (
	"vollmed-client/internal/pkg/constvars"
	"vollmed-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", false),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:       utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Version:   utils.GetEnvString("APP_VERSION", "v1.0"),
			TokenFile: utils.GetEnvString("APP_TOKEN_FILE", ""),
		},
		API: API{
			BaseUrl:                 utils.GetEnvString("API_BASE_URL", constvars.DefaultAPIBaseURL),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", constvars.DefaultRequestTimeoutInSeconds),
			UserAgent:               utils.GetEnvString("APP_USER_AGENT", constvars.DefaultUserAgent),
		},
		ImageCache: ImageCache{
			Size:                    utils.GetEnvInt("APP_IMAGE_CACHE_SIZE", constvars.DefaultImageCacheSize),
			TTLInMinutes:            utils.GetEnvInt("APP_IMAGE_CACHE_TTL_IN_MINUTES", constvars.DefaultImageCacheTTLInMinutes),
			RequestTimeoutInSeconds: utils.GetEnvInt("APP_IMAGE_REQUEST_TIMEOUT_IN_SECONDS", constvars.DefaultRequestTimeoutInSeconds),
			PlaceholderImagePath:    utils.GetEnvString("APP_PLACEHOLDER_IMAGE_PATH", ""),
		},
		Stub: Stub{
			Port:                     utils.GetEnvString("STUB_PORT", ":3000"),
			MaxRequests:              utils.GetEnvInt("STUB_MAX_REQUESTS", 50),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("STUB_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "vollmed-stub-secret"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
	}
}
