package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Matching   MatchingConfig   `yaml:"matching"`
	Scheduling SchedulingConfig `yaml:"scheduling"`
	Embedding  EmbeddingConfig  `yaml:"embedding"`
	Storage    StorageConfig    `yaml:"storage"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig throttles requests per client IP.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// MatchingConfig drives the skill compatibility scorer.
type MatchingConfig struct {
	Threshold           float64       `yaml:"threshold"`
	DefaultSessionCount int           `yaml:"defaultSessionCount"`
	CacheTTL            time.Duration `yaml:"cacheTtl"`
}

// SchedulingConfig drives availability resolution, ranking, and planning.
type SchedulingConfig struct {
	HorizonDays       int        `yaml:"horizonDays"`
	DefaultTimezone   string     `yaml:"defaultTimezone"`
	DefaultChronotype string     `yaml:"defaultChronotype"`
	Rank              RankConfig `yaml:"rank"`
	Plan              PlanConfig `yaml:"plan"`
}

// RankConfig exposes the slot scoring constants.
type RankConfig struct {
	TimeGapWeight    float64       `yaml:"timeGapWeight"`
	ChronotypeWeight float64       `yaml:"chronotypeWeight"`
	DensityWeight    float64       `yaml:"densityWeight"`
	HalfLife         time.Duration `yaml:"halfLife"`
	MaxLead          time.Duration `yaml:"maxLead"`
	IdealGapMinutes  float64       `yaml:"idealGapMinutes"`
	ClampGapMinutes  float64       `yaml:"clampGapMinutes"`
	OpenGapMinutes   float64       `yaml:"openGapMinutes"`
	DecayGapMinutes  float64       `yaml:"decayGapMinutes"`
}

// PlanConfig exposes the spaced-selection constants.
type PlanConfig struct {
	IdealSessionGap time.Duration `yaml:"idealSessionGap"`
	GapTolerance    time.Duration `yaml:"gapTolerance"`
	GapDecay        time.Duration `yaml:"gapDecay"`
	GapWeight       float64       `yaml:"gapWeight"`
	ScoreWeight     float64       `yaml:"scoreWeight"`
}

// EmbeddingConfig contains the embedding provider settings.
type EmbeddingConfig struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseUrl"`
	Model   string `yaml:"model"`
	// Dim is the expected vector length; the deterministic fallback
	// embedder also uses it.
	Dim int `yaml:"dim"`
}

// StorageConfig groups the optional external stores.
type StorageConfig struct {
	Postgres PostgresConfig `yaml:"postgres"`
	Valkey   ValkeyConfig   `yaml:"valkey"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ValkeyConfig contains connection information for the score cache.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("MATCH_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Matching.Threshold = parsed
		}
	}
	if v := os.Getenv("MATCH_DEFAULT_SESSIONS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Matching.DefaultSessionCount = parsed
		}
	}
	if v := os.Getenv("MATCH_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Matching.CacheTTL = parsed
		}
	}
	if v := os.Getenv("SCHEDULE_HORIZON_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Scheduling.HorizonDays = parsed
		}
	}
	if v := os.Getenv("SCHEDULE_DEFAULT_TIMEZONE"); v != "" {
		cfg.Scheduling.DefaultTimezone = v
	}
	if v := os.Getenv("EMBEDDING_API_KEY"); v != "" {
		cfg.Embedding.APIKey = v
	}
	if v := os.Getenv("EMBEDDING_BASE_URL"); v != "" {
		cfg.Embedding.BaseURL = v
	}
	if v := os.Getenv("EMBEDDING_MODEL"); v != "" {
		cfg.Embedding.Model = v
	}
	if v := os.Getenv("EMBEDDING_DIM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Embedding.Dim = parsed
		}
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Storage.Postgres.DSN = v
	}
	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Storage.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Storage.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("VALKEY_ENABLED"); v != "" {
		cfg.Storage.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("VALKEY_ADDR"); v != "" {
		cfg.Storage.Valkey.Addr = v
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		Matching: MatchingConfig{
			Threshold:           0.8,
			DefaultSessionCount: 5,
			CacheTTL:            6 * time.Hour,
		},
		Scheduling: SchedulingConfig{
			HorizonDays:       60,
			DefaultTimezone:   "America/Los_Angeles",
			DefaultChronotype: "early_bird",
			Rank: RankConfig{
				TimeGapWeight:    0.4,
				ChronotypeWeight: 0.3,
				DensityWeight:    0.3,
				HalfLife:         72 * time.Hour,
				MaxLead:          14 * 24 * time.Hour,
				IdealGapMinutes:  120,
				ClampGapMinutes:  240,
				OpenGapMinutes:   480,
				DecayGapMinutes:  240,
			},
			Plan: PlanConfig{
				IdealSessionGap: 16 * time.Hour,
				GapTolerance:    2 * time.Hour,
				GapDecay:        24 * time.Hour,
				GapWeight:       0.7,
				ScoreWeight:     0.3,
			},
		},
		Embedding: EmbeddingConfig{
			Model: "text-embedding-3-small",
			Dim:   1536,
		},
		Storage: StorageConfig{
			Postgres: PostgresConfig{
				MaxConns: 4,
				MinConns: 0,
			},
			Valkey: ValkeyConfig{
				Enabled: false,
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Matching.Threshold <= 0 || c.Matching.Threshold > 1 {
		return errors.New("matching.threshold must be in (0, 1]")
	}
	if c.Matching.DefaultSessionCount <= 0 {
		return errors.New("matching.defaultSessionCount must be positive")
	}
	if c.Matching.CacheTTL < 0 {
		return errors.New("matching.cacheTtl cannot be negative")
	}
	if c.Scheduling.HorizonDays <= 0 {
		return errors.New("scheduling.horizonDays must be positive")
	}
	if c.Scheduling.DefaultTimezone == "" {
		return errors.New("scheduling.defaultTimezone cannot be empty")
	}
	rank := c.Scheduling.Rank
	if rank.TimeGapWeight < 0 || rank.ChronotypeWeight < 0 || rank.DensityWeight < 0 {
		return errors.New("scheduling.rank weights cannot be negative")
	}
	if sum := rank.TimeGapWeight + rank.ChronotypeWeight + rank.DensityWeight; sum <= 0 {
		return errors.New("scheduling.rank weights must sum to a positive value")
	}
	if rank.HalfLife <= 0 {
		return errors.New("scheduling.rank.halfLife must be positive")
	}
	if rank.MaxLead <= 0 {
		return errors.New("scheduling.rank.maxLead must be positive")
	}
	if rank.IdealGapMinutes <= 0 || rank.ClampGapMinutes <= 0 || rank.DecayGapMinutes <= 0 {
		return errors.New("scheduling.rank gap minutes must be positive")
	}
	plan := c.Scheduling.Plan
	if plan.IdealSessionGap <= 0 {
		return errors.New("scheduling.plan.idealSessionGap must be positive")
	}
	if plan.GapDecay <= 0 {
		return errors.New("scheduling.plan.gapDecay must be positive")
	}
	if plan.GapWeight < 0 || plan.ScoreWeight < 0 {
		return errors.New("scheduling.plan weights cannot be negative")
	}
	if strings.TrimSpace(c.Embedding.Model) == "" {
		return errors.New("embedding.model cannot be empty")
	}
	if c.Embedding.Dim <= 0 {
		return errors.New("embedding.dim must be positive")
	}
	if c.Storage.Valkey.Enabled && strings.TrimSpace(c.Storage.Valkey.Addr) == "" {
		return errors.New("storage.valkey.addr cannot be empty when the score cache is enabled")
	}
	return nil
}
