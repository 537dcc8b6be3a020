// Package config loads runtime settings from PRODAJALNA_* environment
// variables, falling back to the defaults declared in struct tags.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Namespace prefixes every environment variable name.
const Namespace = "PRODAJALNA"

var (
	// ErrInvalidConfig is returned when the target is not a pointer to a struct.
	ErrInvalidConfig = errors.New("config must be a pointer to a struct")

	// ErrVarNotSet is returned when a variable is unset and has no default.
	ErrVarNotSet = errors.New("env var not set")

	// ErrUnsupportedVarType is returned for fields of a type Parse cannot fill.
	ErrUnsupportedVarType = errors.New("unsupported env var type")

	// ErrInvalidValue is returned when a parsed value is out of range.
	ErrInvalidValue = errors.New("invalid config value")
)

// Config holds all runtime settings.
type Config struct {
	// StoreFile is the inventory document.
	StoreFile string `env:"STORE_FILE" default:"store.json"`

	// UsersFile is the credential document.
	UsersFile string `env:"USERS_FILE" default:"users.json"`

	// AdminUsername and AdminPassword seed the first manager account.
	AdminUsername string `env:"ADMIN_USERNAME" default:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" default:"admin123"`

	// SessionTTL bounds a login; 0 keeps it until logout or restart.
	SessionTTL time.Duration `env:"SESSION_TTL" default:"0"`

	// BcryptCost must lie within bcrypt.MinCost..bcrypt.MaxCost.
	BcryptCost int `env:"BCRYPT_COST" default:"10"`

	Log LogConfig `envPrefix:"LOG_"`
}

// LogConfig controls logging output.
type LogConfig struct {
	// File additionally receives all log lines when set.
	File string `env:"FILE" default:""`

	// Level is one of debug, info, warn, error.
	Level string `env:"LEVEL" default:"warn"`
}

// Load returns the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := Parse(cfg, Namespace); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values that parse but cannot be used.
func (c *Config) Validate() error {
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: %s_BCRYPT_COST must be between %d and %d, got %d",
			ErrInvalidValue, Namespace, bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("%w: %s_SESSION_TTL must not be negative, got %s",
			ErrInvalidValue, Namespace, c.SessionTTL)
	}
	return nil
}

// Parse fills the tagged fields of cfg from environment variables named
// NAMESPACE_PREFIX_TAG. Nested structs contribute their envPrefix tag.
func Parse(cfg any, namespace string) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return ErrInvalidConfig
	}

	if namespace != "" {
		namespace += "_"
	}
	return parse(namespace, v.Elem())
}

func parse(prefix string, v reflect.Value) error {
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		value := v.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := parse(prefix+field.Tag.Get("envPrefix"), value); err != nil {
				return err
			}
			continue
		}

		if err := parseField(prefix, field, value); err != nil {
			return fmt.Errorf("parse field %s: %w", field.Name, err)
		}
	}

	return nil
}

func parseField(prefix string, field reflect.StructField, value reflect.Value) error {
	envTag := field.Tag.Get("env")
	if envTag == "" {
		return nil
	}

	name := prefix + envTag
	raw, ok := os.LookupEnv(name)
	if !ok {
		def, hasDefault := field.Tag.Lookup("default")
		if !hasDefault {
			return fmt.Errorf("%w: %s", ErrVarNotSet, name)
		}
		raw = def
	}

	// Duration is an int64 kind, so it has to be matched before the kind switch.
	if field.Type == reflect.TypeOf(time.Duration(0)) {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %w", name, err)
		}
		value.SetInt(int64(d))
		return nil
	}

	//nolint:exhaustive
	switch field.Type.Kind() {
	case reflect.String:
		value.SetString(raw)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid type for %s: %w", name, err)
		}
		value.SetInt(int64(n))
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid type for %s: %w", name, err)
		}
		value.SetBool(b)
	default:
		return fmt.Errorf("%w: %s (%v)", ErrUnsupportedVarType, name, field.Type.Kind())
	}

	return nil
}
