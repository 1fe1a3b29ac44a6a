package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ehr/fhirmodels/internal/platform/blobstore"
)

// Config holds the settings shared by the command-line tools.
type Config struct {
	LogLevel         string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
	LogFormat        string `mapstructure:"LOG_FORMAT" validate:"oneof=json console"`
	Workers          int    `mapstructure:"WORKERS" validate:"min=1,max=256"`
	MaxDocumentBytes int64  `mapstructure:"MAX_DOCUMENT_BYTES" validate:"min=1024"`
	S3Endpoint       string `mapstructure:"S3_ENDPOINT" validate:"omitempty,hostname_port"`
	S3AccessKey      string `mapstructure:"S3_ACCESS_KEY" validate:"required_with=S3Endpoint"`
	S3SecretKey      string `mapstructure:"S3_SECRET_KEY" validate:"required_with=S3Endpoint"`
	S3UseSSL         bool   `mapstructure:"S3_USE_SSL"`
	S3Region         string `mapstructure:"S3_REGION"`
}

var keys = []string{
	"LOG_LEVEL",
	"LOG_FORMAT",
	"WORKERS",
	"MAX_DOCUMENT_BYTES",
	"S3_ENDPOINT",
	"S3_ACCESS_KEY",
	"S3_SECRET_KEY",
	"S3_USE_SSL",
	"S3_REGION",
}

// Load reads the configuration from the environment. Variables in a .env
// file in the working directory are applied first, without overriding ones
// already set.
func Load() (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("WORKERS", 4)
	v.SetDefault("MAX_DOCUMENT_BYTES", blobstore.DefaultMaxSize)
	v.SetDefault("S3_USE_SSL", true)
	v.SetDefault("S3_REGION", "us-east-1")

	// Bind env vars explicitly so Unmarshal picks them up
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	return cfg, nil
}

// Validate checks every field against its constraints and reports all
// violations together, named by their environment variable.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	name := envName(fe.StructField())
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, got %q", name, strings.Join(strings.Fields(fe.Param()), ", "), fmt.Sprint(fe.Value()))
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "required_with":
		return fmt.Sprintf("%s is required when S3_ENDPOINT is set", name)
	case "hostname_port":
		return fmt.Sprintf("%s must be host:port, got %q", name, fmt.Sprint(fe.Value()))
	}
	return fmt.Sprintf("%s is invalid", name)
}

// envName maps a struct field back to its mapstructure key.
func envName(field string) string {
	switch field {
	case "LogLevel":
		return "LOG_LEVEL"
	case "LogFormat":
		return "LOG_FORMAT"
	case "Workers":
		return "WORKERS"
	case "MaxDocumentBytes":
		return "MAX_DOCUMENT_BYTES"
	case "S3Endpoint":
		return "S3_ENDPOINT"
	case "S3AccessKey":
		return "S3_ACCESS_KEY"
	case "S3SecretKey":
		return "S3_SECRET_KEY"
	}
	return field
}

// HasObjectStore reports whether an S3-compatible store is configured.
func (c *Config) HasObjectStore() bool {
	return c.S3Endpoint != ""
}

// ObjectStore returns the object store settings.
func (c *Config) ObjectStore() blobstore.ObjectConfig {
	return blobstore.ObjectConfig{
		Endpoint:  c.S3Endpoint,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		UseSSL:    c.S3UseSSL,
		Region:    c.S3Region,
	}
}
