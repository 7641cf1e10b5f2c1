package constants

import (
	"os"
	"strings"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetAddr() string {
	return getenv("SCORETREE_ADDR", ":8080")
}

func GetLogLevel() string {
	return getenv("SCORETREE_LOG_LEVEL", "info")
}

func GetLogFormat() string {
	return getenv("SCORETREE_LOG_FORMAT", "text")
}

// GetAllowedOrigins reads a comma separated list of CORS origins.
func GetAllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(getenv("SCORETREE_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// MaxRequestBytes caps the body of a parse request.
const MaxRequestBytes = 8 << 20
