package config

import (
	"fmt"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// DefaultAppOrigin is used when no externally-reachable origin is configured.
const DefaultAppOrigin = "http://localhost:8080"

type Config struct {
	Port           int
	MongoURI       string
	JWTSecret      string
	SessionKey     string
	AppOrigin      string
	AllowedOrigins []string
	Google         OAuthProvider
	GitHub         OAuthProvider
	SMTP           SMTP
}

type OAuthProvider struct {
	ClientID     string
	ClientSecret string
}

type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Load reads config from environment (LINKSTASH_ prefix) and an optional
// linkstash.yaml in the working directory.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LINKSTASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("linkstash")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional config file

	v.SetDefault("http.port", 8080)
	v.SetDefault("app.origin", DefaultAppOrigin)
	v.SetDefault("smtp.port", 587)

	cfg := &Config{}
	cfg.Port = v.GetInt("http.port")
	cfg.MongoURI = v.GetString("mongo.uri")
	cfg.JWTSecret = v.GetString("jwt.secret")
	cfg.SessionKey = v.GetString("session.key")
	cfg.AppOrigin = v.GetString("app.origin")
	cfg.AllowedOrigins = splitOrigins(v.GetString("allowed.origins"))
	cfg.Google.ClientID = v.GetString("google.client.id")
	cfg.Google.ClientSecret = v.GetString("google.client.secret")
	cfg.GitHub.ClientID = v.GetString("github.client.id")
	cfg.GitHub.ClientSecret = v.GetString("github.client.secret")
	cfg.SMTP.Host = v.GetString("smtp.host")
	cfg.SMTP.Port = v.GetInt("smtp.port")
	cfg.SMTP.Username = v.GetString("smtp.username")
	cfg.SMTP.Password = v.GetString("smtp.password")
	cfg.SMTP.From = v.GetString("smtp.from")

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("LINKSTASH_MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("LINKSTASH_JWT_SECRET is required")
	}
	if cfg.SessionKey == "" {
		return nil, fmt.Errorf("LINKSTASH_SESSION_KEY is required")
	}

	return cfg, nil
}

// CallbackURL builds the post-auth redirect target for a provider against the
// configured app origin.
func (c *Config) CallbackURL(provider string) string {
	return fmt.Sprintf("%s/api/auth/%s/callback", c.AppOrigin, provider)
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
