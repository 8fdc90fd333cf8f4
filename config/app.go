package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName        string
	Port           string
	Env            string
	Debug          bool
	BrandName      string
	AllowedOrigins []string
	SessionTTL     time.Duration
	// Add more fields as needed
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:        os.Getenv("APP_NAME"),
			Port:           os.Getenv("PORT"),
			Env:            os.Getenv("APP_ENV"),
			Debug:          os.Getenv("DEBUG") == "true",
			BrandName:      GetEnv("BRAND_NAME", "Widget"),
			AllowedOrigins: parseOrigins(os.Getenv("WIDGET_ALLOWED_ORIGINS")),
			SessionTTL:     parseSessionTTL(os.Getenv("SESSION_TTL_MINUTES")),
		}
	})
}

// parseOrigins splits a comma-separated origin list. Empty entries are dropped.
func parseOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}

func parseSessionTTL(raw string) time.Duration {
	minutes := 30
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			minutes = n
		}
	}
	return time.Duration(minutes) * time.Minute
}
