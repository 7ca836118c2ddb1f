package config

import (
	"os"
)

type PrefsBackend string

const (
	PrefsMemory    PrefsBackend = "memory"
	PrefsFile      PrefsBackend = "file"
	PrefsFirestore PrefsBackend = "firestore"
)

type Config struct {
	Addr         string
	LogLevel     string
	FeedURL      string
	HomeCurrency string
	PrefsBackend PrefsBackend
	PrefsFile    string
	ProjectID    string
}

func New() *Config {
	return &Config{
		Addr:         getEnv("ADDR", ":8080"),
		LogLevel:     os.Getenv("LOGLEVEL"),
		FeedURL:      os.Getenv("FEEDURL"),
		HomeCurrency: getEnv("HOMECURRENCY", "AUD"),
		PrefsBackend: getPrefsBackend(os.Getenv("PREFSBACKEND")),
		PrefsFile:    getEnv("PREFSFILE", "preferences.json"),
		ProjectID:    os.Getenv("PROJECTID"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getPrefsBackend(v string) PrefsBackend {
	switch v {
	case "file":
		return PrefsFile
	case "firestore":
		return PrefsFirestore
	default: // "memory"
		return PrefsMemory
	}
}
