// Package config loads daemon options from TOML files, environment
// variables and CLI flags, with CLI > env > file precedence, and
// watches the file for runtime changes.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/asandikci/strongswan/internal/logging"
)

// Options are the daemon's top-level settings. Flat structure with
// humacli help tags plus toml/env mappings.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"charon.toml"`

	// Admin API settings
	Listen string `help:"Admin API listen address" default:":4500" toml:"api.listen" env:"API_LISTEN"`

	// Logging settings
	LogOutput    string `help:"Log output (journal, stderr, stdout)" default:"journal" toml:"logging.output" env:"LOG_OUTPUT"`
	LogDefault   string `help:"Default level specification" default:"all1" toml:"logging.default" env:"LOG_DEFAULT"`
	LogThreadIDs bool   `help:"Include goroutine ids in log prefixes" default:"false" toml:"logging.thread_ids" env:"LOG_THREAD_IDS"`
	LogWatch     bool   `help:"Re-apply logging levels when the config file changes" default:"true" toml:"logging.watch" env:"LOG_WATCH"`
}

// Load fills opts with proper precedence: CLI args > env vars > config
// file. If cmd is provided, flags explicitly set via CLI are left
// untouched.
func Load(opts any, cmd *cobra.Command) error {
	v := reflect.ValueOf(opts).Elem()
	t := v.Type()

	changed := make(map[string]bool)
	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if f.Changed {
				changed[f.Name] = true
			}
		})
	}

	// The Config field names the file everything else is read from.
	var path string
	for i := 0; i < v.NumField(); i++ {
		if t.Field(i).Name == "Config" {
			path = v.Field(i).String()
			break
		}
	}

	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			var file map[string]any
			if err := toml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("failed to parse TOML config: %w", err)
			}
			for i := 0; i < v.NumField(); i++ {
				field := v.Field(i)
				fieldType := t.Field(i)
				if changed[fieldNameToFlag(fieldType.Name)] {
					continue
				}
				if tomlPath := fieldType.Tag.Get("toml"); tomlPath != "" {
					if value := nestedValue(file, tomlPath); value != nil {
						setField(field, value)
					}
				}
			}
		}
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)
		if changed[fieldNameToFlag(fieldType.Name)] {
			continue
		}
		if envKey := fieldType.Tag.Get("env"); envKey != "" {
			if envValue := os.Getenv("CHARON_" + envKey); envValue != "" {
				setFieldFromString(field, envValue)
			}
		}
	}

	return nil
}

// LoggingFile is the shape of the [logging] table in the config file.
type LoggingFile struct {
	Logging logging.Config `toml:"logging"`
}

// LoadLogging builds the logging configuration: default level, output
// and id flag come from opts (already resolved with CLI > env > file
// precedence by Load), the per-logger level table comes straight from
// the file since the flat Options cannot carry it.
func LoadLogging(path string, opts *Options) (logging.Config, error) {
	cfg := logging.Config{
		Default:   opts.LogDefault,
		Output:    opts.LogOutput,
		ThreadIDs: opts.LogThreadIDs,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var file LoggingFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse TOML config: %w", err)
	}

	cfg.Loggers = file.Logging.Loggers
	return cfg, nil
}

// fieldNameToFlag converts a struct field name to its CLI flag name.
// Example: "LogDefault" -> "log-default".
func fieldNameToFlag(fieldName string) string {
	var result []rune
	for i, r := range fieldName {
		if i > 0 && unicode.IsUpper(r) {
			result = append(result, '-')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}

// nestedValue retrieves a value from nested maps using dot notation.
func nestedValue(data map[string]any, path string) any {
	parts := strings.Split(path, ".")
	current := data
	for i, part := range parts {
		if i == len(parts)-1 {
			return current[part]
		}
		next, ok := current[part].(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}
	return nil
}

func setField(field reflect.Value, value any) {
	if !field.CanSet() {
		return
	}
	switch field.Kind() {
	case reflect.String:
		if s, ok := value.(string); ok {
			field.SetString(s)
		}
	case reflect.Bool:
		if b, ok := value.(bool); ok {
			field.SetBool(b)
		}
	case reflect.Int, reflect.Int64:
		switch n := value.(type) {
		case int64:
			field.SetInt(n)
		case float64:
			field.SetInt(int64(n))
		}
	}
}

func setFieldFromString(field reflect.Value, value string) {
	if !field.CanSet() {
		return
	}
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		if b, err := strconv.ParseBool(value); err == nil {
			field.SetBool(b)
		}
	case reflect.Int, reflect.Int64:
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			field.SetInt(n)
		}
	}
}
