package config

import (
	"os"
	"strconv"

	"github.com/naoina/toml"
)

type ServerConfig struct {
	Port          int
	FrontendURL   string
	SessionSecret string
}

type DatabaseConfig struct {
	Driver string
	DSN    string
}

type DoHConfig struct {
	Endpoint string
}

type OAuthProviderConfig struct {
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

type OAuthConfig struct {
	GitHub OAuthProviderConfig
	Google OAuthProviderConfig
}

type TomlConfig struct {
	Server   ServerConfig
	Database DatabaseConfig
	DoH      DoHConfig
	OAuth    OAuthConfig
}

// Placeholder client ids disable the matching OAuth routes, the same way a
// missing env var used to skip strategy registration.
const PlaceholderClientID = "placeholder_client_id"

// Default returns a config where every value has its documented fallback.
func Default() TomlConfig {
	return TomlConfig{
		Server: ServerConfig{
			Port:          3001,
			FrontendURL:   "http://localhost:3000",
			SessionSecret: "your-session-secret",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "dashboard.db",
		},
		DoH: DoHConfig{
			Endpoint: "https://dns.google/resolve",
		},
		OAuth: OAuthConfig{
			GitHub: OAuthProviderConfig{
				ClientID:    PlaceholderClientID,
				CallbackURL: "http://localhost:3001/api/auth/github/callback",
			},
			Google: OAuthProviderConfig{
				ClientID:    PlaceholderClientID,
				CallbackURL: "http://localhost:3001/api/auth/google/callback",
			},
		},
	}
}

// Load reads a TOML config file over the defaults. An empty filename keeps
// the defaults as-is; environment overrides are applied either way.
func Load(filename string) (TomlConfig, error) {
	cfg := Default()

	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
			return cfg, err
		}
	}

	UpdateConfigFromEnv(&cfg)
	return cfg, nil
}

// UpdateConfigFromEnv overrides config values from DNSDASH_* environment
// variables when they are set.
func UpdateConfigFromEnv(cfg *TomlConfig) {
	setString := func(key string, target *string) {
		if v, ok := os.LookupEnv(key); ok {
			*target = v
		}
	}

	if v, ok := os.LookupEnv("DNSDASH_API_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	setString("DNSDASH_DATABASE_DRIVER", &cfg.Database.Driver)
	setString("DNSDASH_DATABASE_DSN", &cfg.Database.DSN)
	setString("DNSDASH_FRONTEND_URL", &cfg.Server.FrontendURL)
	setString("DNSDASH_SESSION_SECRET", &cfg.Server.SessionSecret)
	setString("DNSDASH_DOH_ENDPOINT", &cfg.DoH.Endpoint)
	setString("DNSDASH_GITHUB_CLIENT_ID", &cfg.OAuth.GitHub.ClientID)
	setString("DNSDASH_GITHUB_CLIENT_SECRET", &cfg.OAuth.GitHub.ClientSecret)
	setString("DNSDASH_GITHUB_CALLBACK_URL", &cfg.OAuth.GitHub.CallbackURL)
	setString("DNSDASH_GOOGLE_CLIENT_ID", &cfg.OAuth.Google.ClientID)
	setString("DNSDASH_GOOGLE_CLIENT_SECRET", &cfg.OAuth.Google.ClientSecret)
	setString("DNSDASH_GOOGLE_CALLBACK_URL", &cfg.OAuth.Google.CallbackURL)
}
