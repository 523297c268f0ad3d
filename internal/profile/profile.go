package profile

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/goliatone/go-formbuilder/pkg/jsonvalue"
	"github.com/goliatone/go-formbuilder/pkg/project"
	"github.com/goliatone/go-formbuilder/pkg/source"
)

// Profile is the runtime configuration shared by the CLI commands and the
// HTTP server.
type Profile struct {
	Mode      string
	Addr      string
	LogLevel  string
	LogFormat string
	Namespace string
	Version   string

	Port                  int
	MaxDepth              int
	RequestTimeoutSeconds int
	MaxBodyBytes          int64
	MaxConcurrent         int
	AllowRemote           bool
}

// DefaultMaxConcurrent bounds concurrent schema work in the HTTP server.
const DefaultMaxConcurrent = 8

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// FromEnv fills the settings that have no command-line flag.
func (p *Profile) FromEnv() {
	p.LogFormat = getEnvOrDefault("FORMBUILDER_LOG_FORMAT", "text")
	p.RequestTimeoutSeconds = getEnvOrDefaultInt("FORMBUILDER_REQUEST_TIMEOUT_SECONDS", 10)
	p.MaxBodyBytes = int64(getEnvOrDefaultInt("FORMBUILDER_MAX_BODY_BYTES", int(source.DefaultMaxBytes)))
	p.MaxConcurrent = getEnvOrDefaultInt("FORMBUILDER_MAX_CONCURRENT", DefaultMaxConcurrent)
	p.AllowRemote = getEnvOrDefault("FORMBUILDER_ALLOW_REMOTE", "false") == "true"
}

// Validate normalises the profile and rejects out-of-range values.
func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}
	if p.Port < 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d", p.Port)
	}
	if p.Addr != "" && net.ParseIP(p.Addr) == nil && p.Addr != "localhost" {
		return errors.Errorf("invalid address %q", p.Addr)
	}
	if p.MaxDepth == 0 {
		p.MaxDepth = jsonvalue.DefaultMaxDepth
	}
	if p.MaxDepth < 0 {
		return errors.Errorf("max depth must be positive, got %d", p.MaxDepth)
	}
	if p.MaxBodyBytes <= 0 {
		p.MaxBodyBytes = source.DefaultMaxBytes
	}
	if p.MaxConcurrent == 0 {
		p.MaxConcurrent = DefaultMaxConcurrent
	}
	if p.MaxConcurrent < 0 {
		return errors.Errorf("max concurrent must be positive, got %d", p.MaxConcurrent)
	}
	if p.RequestTimeoutSeconds < 0 {
		return errors.Errorf("request timeout must not be negative, got %d", p.RequestTimeoutSeconds)
	}
	p.Namespace = strings.TrimSpace(p.Namespace)
	if p.Namespace == "" {
		p.Namespace = project.DefaultNamespace
	}
	if strings.Contains(p.Namespace, ":") {
		return errors.Errorf("namespace %q must not contain ':'", p.Namespace)
	}
	if _, err := parseLevel(p.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	switch p.LogFormat {
	case "", "text", "json":
	default:
		return errors.Errorf("unsupported log format %q", p.LogFormat)
	}
	return nil
}

// Address is the host:port the server listens on.
func (p *Profile) Address() string {
	return net.JoinHostPort(p.Addr, strconv.Itoa(p.Port))
}

// Logger builds the process logger writing to w.
func (p *Profile) Logger(w io.Writer) *slog.Logger {
	level, err := parseLevel(p.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if p.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(raw string) (slog.Level, error) {
	if strings.TrimSpace(raw) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown level %q", raw)
	}
	return level, nil
}
