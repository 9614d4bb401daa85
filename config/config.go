package config

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// BackendEnvVar overrides [generator] backend when set
const BackendEnvVar = "DRAFTMAIL_BACKEND"

const (
	BackendOllama      = "ollama"
	BackendHuggingFace = "huggingface"
)

type ServerConfig struct {
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

// GeneratorConfig picks which text-generation backend is wired in at startup
type GeneratorConfig struct {
	Backend string `toml:"backend"` // "ollama" or "huggingface"
}

type OllamaConfig struct {
	Host           string `toml:"host"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type HuggingFaceConfig struct {
	Endpoint       string  `toml:"endpoint"` // model name is appended as a path segment
	Model          string  `toml:"model"`
	Token          string  `toml:"token"`
	MaxNewTokens   int     `toml:"max_new_tokens"`
	Temperature    float64 `toml:"temperature"`
	DoSample       bool    `toml:"do_sample"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
}

type TranslatorConfig struct {
	Endpoint       string `toml:"endpoint"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type SSLConfig struct {
	Enabled    bool   `toml:"enabled"`
	CertFile   string `toml:"cert_file"` // Path to fullchain.pem
	KeyFile    string `toml:"key_file"`  // Path to privkey.pem
	Port       int    `toml:"port"`
	Domain     string `toml:"domain"`       // Domain name for HSTS
	HSTSMaxAge int    `toml:"hsts_max_age"` // Max age for HSTS in seconds
}

type Config struct {
	Server      ServerConfig      `toml:"server"`
	Generator   GeneratorConfig   `toml:"generator"`
	Ollama      OllamaConfig      `toml:"ollama"`
	HuggingFace HuggingFaceConfig `toml:"huggingface"`
	Translator  TranslatorConfig  `toml:"translator"`
	SSL         SSLConfig         `toml:"ssl"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	var config Config

	config.Server.Port = 3000
	config.Server.LogLevel = "info"

	config.Generator.Backend = BackendOllama

	config.Ollama.Host = "http://127.0.0.1:11434"
	config.Ollama.Model = "mistral"
	config.Ollama.TimeoutSeconds = 300

	config.HuggingFace.Endpoint = "https://api-inference.huggingface.co/models"
	config.HuggingFace.Model = "gpt2"
	config.HuggingFace.MaxNewTokens = 150
	config.HuggingFace.Temperature = 0.7
	config.HuggingFace.DoSample = true
	config.HuggingFace.TimeoutSeconds = 120

	config.Translator.Endpoint = "https://translate.google.com/m"
	config.Translator.TimeoutSeconds = 30

	config.SSL.Port = 443
	config.SSL.HSTSMaxAge = 31536000 // 1 year

	return &config
}

// LoadConfig reads filepath over the defaults. A missing file is not an
// error; the defaults are used as they are.
func LoadConfig(filepath string) (*Config, error) {
	config := Default()

	if _, err := toml.DecodeFile(filepath, config); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if backend := os.Getenv(BackendEnvVar); backend != "" {
		config.Generator.Backend = backend
	}
	config.Generator.Backend = strings.ToLower(strings.TrimSpace(config.Generator.Backend))

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks backend selection and, when enabled, the SSL block
func (c *Config) Validate() error {
	switch c.Generator.Backend {
	case BackendOllama:
		if c.Ollama.Model == "" {
			return fmt.Errorf("ollama model is required")
		}
	case BackendHuggingFace:
		if c.HuggingFace.Model == "" {
			return fmt.Errorf("huggingface model is required")
		}
	default:
		return fmt.Errorf("unknown generator backend %q", c.Generator.Backend)
	}

	if c.SSL.Enabled {
		if err := c.ValidateSSL(); err != nil {
			return fmt.Errorf("SSL configuration error: %w", err)
		}
	}
	return nil
}

// ValidateSSL checks if the SSL configuration is valid
func (c *Config) ValidateSSL() error {
	if !c.SSL.Enabled {
		return nil
	}

	if c.SSL.CertFile == "" {
		return fmt.Errorf("SSL certificate file path is required")
	}

	if c.SSL.KeyFile == "" {
		return fmt.Errorf("SSL key file path is required")
	}

	if _, err := tls.LoadX509KeyPair(c.SSL.CertFile, c.SSL.KeyFile); err != nil {
		return fmt.Errorf("failed to load SSL certificates: %w", err)
	}

	return nil
}

// GetSecurityHeaders returns the extra headers to send when SSL is enabled
func (c *Config) GetSecurityHeaders() map[string]string {
	headers := make(map[string]string)

	if c.SSL.Enabled && c.SSL.Domain != "" {
		headers["Strict-Transport-Security"] = fmt.Sprintf("max-age=%d; includeSubDomains", c.SSL.HSTSMaxAge)
	}

	return headers
}

// ListenAddr is the address the server binds to
func (c *Config) ListenAddr() string {
	if c.SSL.Enabled {
		return fmt.Sprintf(":%d", c.SSL.Port)
	}
	return fmt.Sprintf(":%d", c.Server.Port)
}
