package constvars

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	DefaultRequestTimeoutInSeconds = 15
	DefaultImageCacheSize          = 64
	DefaultImageCacheTTLInMinutes  = 60
	ImageCacheRedisKeyPrefix       = "vollmed:image:"
)

const (
	CacheTierMemory = "memory"
	CacheTierRedis  = "redis"
)

const (
	DateTimeLayout = "2006-01-02T15:04:05Z07:00"
)
