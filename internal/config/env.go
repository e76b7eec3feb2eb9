// Package config provides shared configuration utilities: environment lookups
// and the YAML game settings file.
package config

import (
	"os"
	"strconv"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by
// the key. It returns fallback and ok=false when the variable is unset, and
// an error when it is set but not an integer.
func GetEnvInt(key string, fallback int) (value int, ok bool, err error) {
	raw, set := os.LookupEnv(key)
	if !set {
		return fallback, false, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, false, err
	}
	return v, true, nil
}
