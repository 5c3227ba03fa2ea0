package config

type InternalConfig struct {
	App        App
	API        API
	ImageCache ImageCache
	Stub       Stub
	JWT        JWT
}

type App struct {
	Env     string
	Version string
	// TokenFile is where vollmedctl keeps the bearer token when asked to.
	TokenFile string
}

type API struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
	UserAgent               string
}

type ImageCache struct {
	Size                    int
	TTLInMinutes            int
	RequestTimeoutInSeconds int
	PlaceholderImagePath    string
}

type Stub struct {
	Port                     string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
