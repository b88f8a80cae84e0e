package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string   `mapstructure:"PORT"`
	Env         string   `mapstructure:"ENV"`
	DatabaseURL string   `mapstructure:"DATABASE_URL"`
	DBMaxConns  int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns  int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	JWTSecret        string `mapstructure:"JWT_SECRET"`
	JWTExpiryMinutes int    `mapstructure:"JWT_EXPIRY_MINUTES"`

	GroqAPIKey        string `mapstructure:"GROQ_API_KEY"`
	GroqBaseURL       string `mapstructure:"GROQ_BASE_URL"`
	LLMTextModel      string `mapstructure:"LLM_TEXT_MODEL"`
	LLMVisionModel    string `mapstructure:"LLM_VISION_MODEL"`
	LLMEducationModel string `mapstructure:"LLM_EDUCATION_MODEL"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("JWT_EXPIRY_MINUTES", 60*24)
	v.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	v.SetDefault("LLM_TEXT_MODEL", "openai/gpt-oss-20b")
	v.SetDefault("LLM_VISION_MODEL", "meta-llama/llama-4-scout-17b-16e-instruct")
	v.SetDefault("LLM_EDUCATION_MODEL", "llama-3.3-70b-versatile")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("JWT_SECRET")
	v.BindEnv("JWT_EXPIRY_MINUTES")
	v.BindEnv("GROQ_API_KEY")
	v.BindEnv("GROQ_BASE_URL")
	v.BindEnv("LLM_TEXT_MODEL")
	v.BindEnv("LLM_VISION_MODEL")
	v.BindEnv("LLM_EDUCATION_MODEL")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// AIEnabled reports whether the Groq-backed analysis and generation
// endpoints can be served. Without a key those endpoints return 503.
func (c *Config) AIEnabled() bool {
	return c.GroqAPIKey != ""
}

// Validate checks that the configuration is safe to run. Outside development
// a real JWT secret is mandatory.
func (c *Config) Validate() error {
	if !c.IsDev() && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when ENV=%q", c.Env)
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters, got %d", len(c.JWTSecret))
	}
	if c.JWTExpiryMinutes <= 0 {
		return fmt.Errorf("JWT_EXPIRY_MINUTES must be positive, got %d", c.JWTExpiryMinutes)
	}
	return nil
}
