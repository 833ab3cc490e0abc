// Package config loads process configuration from config/app.json and .env,
// falling back to built-in defaults. Services never read the environment
// directly; the boot sequence hands them the values they need at
// construction time.
package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

const (
	defaultMongoURI       = "mongodb://localhost:27017"
	defaultMongoDatabase  = "foodcourt"
	defaultRedisAddr      = "localhost:6379"
	defaultJWTSecret      = "change-me-in-production"
	defaultAppPort        = "8080"
	defaultAppEnv         = "local"
	defaultFrontendURL    = "http://localhost:5173"
	defaultCurrency       = "inr"
	defaultDeliveryCharge = "50"
	defaultCartPolicy     = "checkout"
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
		"MONGO_URI":          defaultMongoURI,
		"MONGO_DATABASE":     defaultMongoDatabase,
		"REDIS_ADDR":         defaultRedisAddr,
		"REDIS_PASSWORD":     "",
		"JWT_SECRET":         defaultJWTSecret,
		"APP_PORT":           defaultAppPort,
		"APP_ENV":            defaultAppEnv,
		"STRIPE_SECRET_KEY":  "",
		"FRONTEND_URL":       defaultFrontendURL,
		"CURRENCY":           defaultCurrency,
		"DELIVERY_CHARGE":    defaultDeliveryCharge,
		"CART_CLEAR_POLICY":  defaultCartPolicy,
		"STORAGE_DISK":       "local",
		"STORAGE_LOCAL_ROOT": "uploads",
		"STORAGE_URL":        "http://localhost:8080/images",
	}
}

func MongoURI() string      { _ = Load(); return get("MONGO_URI", defaultMongoURI) }
func MongoDatabase() string { _ = Load(); return get("MONGO_DATABASE", defaultMongoDatabase) }

func RedisAddr() string     { _ = Load(); return get("REDIS_ADDR", defaultRedisAddr) }
func RedisPassword() string { _ = Load(); return get("REDIS_PASSWORD", "") }

func JWTSecret() string { _ = Load(); return get("JWT_SECRET", defaultJWTSecret) }
func AppPort() string   { _ = Load(); return get("APP_PORT", defaultAppPort) }
func AppEnv() string    { _ = Load(); return get("APP_ENV", defaultAppEnv) }

func StripeSecretKey() string { _ = Load(); return get("STRIPE_SECRET_KEY", "") }

func FrontendURL() string {
	_ = Load()
	return strings.TrimRight(get("FRONTEND_URL", defaultFrontendURL), "/")
}

func Currency() string { _ = Load(); return strings.ToLower(get("CURRENCY", defaultCurrency)) }

// DeliveryCharge is the flat surcharge added to every order, in major
// currency units.
func DeliveryCharge() float64 {
	_ = Load()
	f, err := strconv.ParseFloat(get("DELIVERY_CHARGE", defaultDeliveryCharge), 64)
	if err != nil || f < 0 {
		return 50
	}
	return f
}

// CartClearPolicy controls when a card-payment checkout empties the cart:
//
//	"checkout" — right after the order record is created, before payment
//	             completes (the historical behaviour).
//	"payment"  — only once payment is confirmed.
func CartClearPolicy() string {
	_ = Load()
	if p := strings.ToLower(get("CART_CLEAR_POLICY", defaultCartPolicy)); p == "payment" {
		return p
	}
	return "checkout"
}

// ── Storage ──────────────────────────────────────────────────────────────────

func StorageDefault() string   { _ = Load(); return get("STORAGE_DISK", "local") }
func StorageLocalRoot() string { _ = Load(); return get("STORAGE_LOCAL_ROOT", "uploads") }
func StorageURL() string       { _ = Load(); return get("STORAGE_URL", "http://localhost:8080/images") }

func StorageS3Bucket() string   { _ = Load(); return get("S3_BUCKET", "") }
func StorageS3Region() string   { _ = Load(); return get("S3_REGION", "us-east-1") }
func StorageS3Key() string      { _ = Load(); return get("S3_KEY", "") }
func StorageS3Secret() string   { _ = Load(); return get("S3_SECRET", "") }
func StorageS3Endpoint() string { _ = Load(); return get("S3_ENDPOINT", "") }
func StorageS3URL() string      { _ = Load(); return get("S3_URL", "") }

// ── File loading ─────────────────────────────────────────────────────────────

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
