package config

import (
	"os"
	"strconv"
)

// Config holds the simulator's process-level settings. The plugin's own
// options live in the booth registry, not here.
type Config struct {
	Port       int
	OutputDir  string
	MetadataDB string
	BaseURL    string
	LogLevel   string
	Captures   int
	SideText   string
	SaveQR     bool
}

func LoadConfig() Config {
	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	captures, _ := strconv.Atoi(getEnv("CAPTURES", "3"))
	saveQR, _ := strconv.ParseBool(getEnv("SAVE_QR", "true"))

	return Config{
		Port:       port,
		OutputDir:  getEnv("OUTPUT_DIR", "pictures"),
		MetadataDB: getEnv("METADATA_DB", "qrbooth.db"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:8080"),
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),
		Captures:   captures,
		SideText:   getEnv("SIDE_TEXT", ""),
		SaveQR:     saveQR,
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
