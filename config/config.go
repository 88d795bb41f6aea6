package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del servicio.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Trading TradingConfig `yaml:"trading"`
	API     APIConfig     `yaml:"api"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig controla el servidor HTTP.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownSeconds int    `yaml:"shutdown_seconds"`
}

// TradingConfig controla el tamaño y los offsets de las órdenes.
type TradingConfig struct {
	DefaultSize  float64 `yaml:"default_size"`  // shares por orden si el caller no indica tamaño
	BuyPremium   float64 `yaml:"buy_premium"`   // prima sobre el quote del lado barato
	SellDiscount float64 `yaml:"sell_discount"` // descuento sobre el quote del lado caro
	ProxyAddress string  `yaml:"proxy_address"` // funder (proxy wallet) de las órdenes firmadas
}

// APIConfig contiene los base URLs de las APIs de Polymarket.
type APIConfig struct {
	GammaBase string `yaml:"gamma_base"`
	DataBase  string `yaml:"data_base"`
	CLOBBase  string `yaml:"clob_base"`
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Los valores del entorno sobreescriben los del YAML para las keys que correspondan.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// PrivateKey devuelve la clave privada de la wallet. Solo vive en el entorno,
// nunca en el YAML. Vacía si el trading en vivo no está configurado.
func PrivateKey() string {
	return os.Getenv("POLYMARKET_PRIVATE_KEY")
}

// ShutdownTimeout devuelve el tiempo de gracia del shutdown como time.Duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.Server.ShutdownSeconds) * time.Second
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("PROXY_ADDRESS"); v != "" {
		cfg.Trading.ProxyAddress = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.ShutdownSeconds <= 0 {
		cfg.Server.ShutdownSeconds = 10
	}
	if cfg.Trading.DefaultSize <= 0 {
		cfg.Trading.DefaultSize = 10
	}
	if cfg.Trading.BuyPremium <= 0 {
		cfg.Trading.BuyPremium = 0.015
	}
	if cfg.Trading.SellDiscount <= 0 {
		cfg.Trading.SellDiscount = 0.015
	}
	if cfg.API.GammaBase == "" {
		cfg.API.GammaBase = "https://gamma-api.polymarket.com"
	}
	if cfg.API.DataBase == "" {
		cfg.API.DataBase = "https://data-api.polymarket.com"
	}
	if cfg.API.CLOBBase == "" {
		cfg.API.CLOBBase = "https://clob.polymarket.com"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
