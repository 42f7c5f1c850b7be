package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	Capture CaptureConfig
	Import  ImportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	LogLevel    string // trace, debug, info, warn, error
	SwaggerFile string // vacío o inexistente = sin /docs
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig ubicación de los datos locales.
type StorageConfig struct {
	Dir            string // blobs de contexto y bandeja
	SubmissionsDir string // lotes XML enviados
}

// CaptureConfig comportamiento de la captura.
type CaptureConfig struct {
	DefaultCurrency string
	ClearOnSubmit   bool
}

// ImportConfig límites de la importación CSV.
type ImportConfig struct {
	MaxBytes   int64
	PreviewTTL time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_DIR, etc.
func Load() (*Config, error) {
	// .env opcional; no pisa variables ya definidas
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	storageDir := getString(v, "STORAGE_DIR", "./data")
	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "kardex-captura"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SwaggerFile: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Dir:            storageDir,
			SubmissionsDir: getString(v, "SUBMISSIONS_DIR", storageDir+"/submissions"),
		},
		Capture: CaptureConfig{
			DefaultCurrency: getString(v, "CAPTURE_DEFAULT_CURRENCY", "GTQ"),
			ClearOnSubmit:   getBool(v, "CAPTURE_CLEAR_ON_SUBMIT", false),
		},
		Import: ImportConfig{
			MaxBytes:   int64(getInt(v, "IMPORT_MAX_BYTES", 5<<20)),
			PreviewTTL: time.Duration(getInt(v, "IMPORT_PREVIEW_TTL_MINUTES", 15)) * time.Minute,
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: HTTP_PORT inválido: %d", cfg.HTTP.Port)
	}
	if cfg.Import.MaxBytes <= 0 {
		return nil, fmt.Errorf("config: IMPORT_MAX_BYTES debe ser mayor que 0")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
