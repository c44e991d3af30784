package config

import (
	"os"
	"strconv"
	"strings"
)

// Keys recognized by the application. The table name and secret name carry no
// defaults on purpose: a deployment that forgets to set them should fail at the
// first store or secret access, not write into a guessed table.
const (
	KeyBlogPostTable   = "DYNAMODB_BLOG_POST_TABLE"
	KeyNotionSecret    = "NOTION_SECRET_NAME"
	KeyIsOffline       = "IS_OFFLINE"
	KeyOfflineEndpoint = "OFFLINE_DYNAMODB_ENDPOINT"
	KeyCORSAllowOrigin = "CORS_ALLOW_ORIGIN"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

// GetBool treats any value strconv can't parse as the default, so IS_OFFLINE=1
// and IS_OFFLINE=true both count as offline.
func GetBool(config map[string]string, key string, defaultValue bool) bool {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}

	return asBool
}
