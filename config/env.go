package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	defaultStoreDriver = "file"
	defaultStoreRoot   = "storage"
	defaultSQLiteDSN   = "quickstationery.db"
	defaultRedisAddr   = "localhost:6379"
	defaultAppPort     = "8080"
	defaultAppEnv      = "local"
	defaultSessionTTL  = "2h"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"STORE_DRIVER":     defaultStoreDriver,
		"STORE_ROOT":       defaultStoreRoot,
		"STORE_SQLITE_DSN": defaultSQLiteDSN,
		"REDIS_ADDR":       defaultRedisAddr,
		"REDIS_PASSWORD":   "",
		"APP_PORT":         defaultAppPort,
		"APP_ENV":          defaultAppEnv,
		"SESSION_TTL":      defaultSessionTTL,
	}
}

// StoreDriver selects the record-store backend.
// Unknown values fall back to the file driver.
func StoreDriver() string {
	_ = Load()

	driver := strings.ToLower(get("STORE_DRIVER", defaultStoreDriver))
	switch driver {
	case "memory", "file", "redis", "sqlite":
		return driver
	default:
		return defaultStoreDriver
	}
}

// StoreRoot is the directory holding the file driver's record files.
func StoreRoot() string {
	_ = Load()
	return get("STORE_ROOT", defaultStoreRoot)
}

func StoreSQLiteDSN() string {
	_ = Load()
	return get("STORE_SQLITE_DSN", defaultSQLiteDSN)
}

func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", defaultRedisAddr)
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// SessionTTL parses SESSION_TTL as a Go duration (default 2h).
func SessionTTL() time.Duration {
	_ = Load()
	d, err := time.ParseDuration(get("SESSION_TTL", defaultSessionTTL))
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(defaultSessionTTL)
	}
	return d
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
