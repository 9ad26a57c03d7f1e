package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config carries every runtime setting. It is built once in main via
// Load and passed explicitly to constructors; nothing reads the
// environment after startup.
type Config struct {
	Port     string
	LogLevel string

	// MongoDB profile cache
	MongoURI        string
	MongoDB         string
	MongoCollection string
	MongoSearchIdx  string

	// Optional Redis response cache
	RedisAddr string

	// Optional Postgres search log
	PostgresURI string

	// Entity extraction provider: "groq" (default) or "vertex"
	ExtractorProvider string
	GroqAPIKey        string
	GroqModel         string
	VertexProjectID   string
	VertexLocation    string
	VertexModel       string

	// External profile provider
	ProxycurlAPIKey  string
	ProxycurlBaseURL string

	// Relevance scoring collaborator; empty means pass-through scoring
	ScorerURL string

	// Optional GCS archival of profile pictures
	GCSBucket string

	// Optional HS256 auth for externally issued tokens
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	// Pipeline tuning
	FreshnessMaxAge time.Duration
	HydrateTimeout  time.Duration
	BackfillDefault int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:     getenv("PORT", "8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDB:         getenv("MONGO_DB", "hirelens"),
		MongoCollection: getenv("MONGO_COLLECTION", "profiles"),
		MongoSearchIdx:  getenv("MONGO_SEARCH_INDEX", "profile_search_index"),

		RedisAddr:   firstenv("REDIS_ADDR", "REDIS_URI", "REDIS_URL"),
		PostgresURI: os.Getenv("POSTGRES_URI"),

		ExtractorProvider: getenv("EXTRACTOR_PROVIDER", "groq"),
		GroqAPIKey:        os.Getenv("GROQ_API_KEY"),
		GroqModel:         getenv("GROQ_MODEL", "llama3-8b-8192"),
		VertexProjectID:   os.Getenv("VERTEX_PROJECT_ID"),
		VertexLocation:    getenv("VERTEX_LOCATION", "us-central1"),
		VertexModel:       getenv("VERTEX_MODEL", "gemini-1.5-flash"),

		ProxycurlAPIKey:  os.Getenv("PROXYCURL_API_KEY"),
		ProxycurlBaseURL: getenv("PROXYCURL_BASE_URL", "https://nubela.co/proxycurl/api"),

		ScorerURL: os.Getenv("SCORER_URL"),
		GCSBucket: os.Getenv("GCS_BUCKET"),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   os.Getenv("JWT_ISSUER"),
		JWTAudience: os.Getenv("JWT_AUDIENCE"),

		FreshnessMaxAge: getdur("FRESHNESS_MAX_AGE", 30*24*time.Hour),
		HydrateTimeout:  getdur("HYDRATE_TIMEOUT", 30*time.Second),
		BackfillDefault: getint("BACKFILL_DEFAULT", 5),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI environment variable is not set")
	}
	if cfg.ProxycurlAPIKey == "" {
		return nil, errors.New("PROXYCURL_API_KEY environment variable is not set")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func firstenv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
