package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// authentication, the completion provider, document ingestion, chat behavior
// and graceful shutdown.
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
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"1m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"studybuddy" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT contains the RS256 key pair used to sign and verify access tokens
	JWT struct {
		// PrivateKey is the PEM-encoded RSA private key used by the jwt subcommand to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA public key used by the API to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
	} `yaml:"jwt"`

	// Groq configures the chat-completion provider
	Groq struct {
		// APIKey authenticates requests against the Groq API
		APIKey string `env:"GROQ_API_KEY" yaml:"apiKey"`
		// BaseURL is the API base, override for tests or proxies
		BaseURL string `env:"GROQ_BASE_URL" env-default:"https://api.groq.com/openai/v1" yaml:"baseURL"`
		// Model is the completion model identifier
		Model string `env:"GROQ_MODEL" env-default:"llama-3.3-70b-versatile" yaml:"model"`
		// Temperature controls sampling randomness of generated answers
		Temperature float64 `env:"GROQ_TEMPERATURE" env-default:"0.6" yaml:"temperature"`
		// MaxTokens caps the generated answer length
		MaxTokens int `env:"GROQ_MAX_TOKENS" env-default:"1500" yaml:"maxTokens"`
		// Timeout bounds a single completion HTTP request
		Timeout time.Duration `env:"GROQ_TIMEOUT" env-default:"60s" yaml:"timeout"`
	} `yaml:"groq"`

	// Ingest configures document validation and chunking
	Ingest struct {
		// ChunkSize is the target chunk length in characters
		ChunkSize int `env:"INGEST_CHUNK_SIZE" env-default:"1200" yaml:"chunkSize"`
		// ChunkOverlap is the desired overlap between consecutive chunks in characters
		ChunkOverlap int `env:"INGEST_CHUNK_OVERLAP" env-default:"200" yaml:"chunkOverlap"`
		// MinChunkLength drops chunks shorter than this many characters
		MinChunkLength int `env:"INGEST_MIN_CHUNK_LENGTH" env-default:"10" yaml:"minChunkLength"`
		// MaxFileSizeMB rejects uploads larger than this many megabytes
		MaxFileSizeMB int `env:"INGEST_MAX_FILE_SIZE_MB" env-default:"50" yaml:"maxFileSizeMB"`
		// MaxPDFPages caps how many PDF pages are extracted per document
		MaxPDFPages int `env:"INGEST_MAX_PDF_PAGES" env-default:"500" yaml:"maxPDFPages"`
		// MaxAttempts is how many times ingestion is retried before a document is marked failed
		MaxAttempts int `env:"INGEST_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// MaxWorkers limits how many ingest jobs run concurrently
		MaxWorkers int `env:"INGEST_MAX_WORKERS" env-default:"5" yaml:"maxWorkers"`
	} `yaml:"ingest"`

	// Chat configures retrieval and prompting
	Chat struct {
		// TopK is how many retrieved excerpts are included in the prompt
		TopK int `env:"CHAT_TOP_K" env-default:"5" yaml:"topK"`
		// MaxContextChars caps the total size of the excerpt block in characters
		MaxContextChars int `env:"CHAT_MAX_CONTEXT_CHARS" env-default:"14000" yaml:"maxContextChars"`
		// HistoryLimit is how many prior messages are replayed into the prompt
		HistoryLimit int `env:"CHAT_HISTORY_LIMIT" env-default:"12" yaml:"historyLimit"`
	} `yaml:"chat"`

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
