package configs

// App holds application-level settings.
type App struct {
	// BaseURL is the public origin of this server. It is embedded into
	// the publisher script and into tracking URLs, so it must match what
	// browsers can reach.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
}
