package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, advice collaborator,
// report rendering, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// It bounds a full pipeline run including the three advice calls.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"2m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Advice contains the text-generation collaborator configuration
	Advice struct {
		// BaseURL overrides the chat-completion endpoint; empty uses the provider default
		BaseURL string `env:"ADVICE_BASE_URL" env-default:"" yaml:"baseURL"`
		// APIKey authenticates against the chat-completion endpoint
		APIKey string `env:"ADVICE_API_KEY" env-default:"" yaml:"apiKey"`
		// Model is the model identifier used for advice generation
		Model string `env:"ADVICE_MODEL" env-default:"gpt-4" yaml:"model"`
		// RequestTimeout bounds a single advice request
		RequestTimeout time.Duration `env:"ADVICE_REQUEST_TIMEOUT" env-default:"1m" yaml:"requestTimeout"`
	} `yaml:"advice"`

	// Report contains rendering related configurations
	Report struct {
		// OutputDir is the directory rendered documents are written to
		OutputDir string `env:"REPORT_OUTPUT_DIR" env-default:"./reports" yaml:"outputDir"`
		// ChartWidth is the chart image width in pixels
		ChartWidth int `env:"REPORT_CHART_WIDTH" env-default:"640" yaml:"chartWidth"`
		// ChartHeight is the chart image height in pixels
		ChartHeight int `env:"REPORT_CHART_HEIGHT" env-default:"480" yaml:"chartHeight"`
	} `yaml:"report"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
