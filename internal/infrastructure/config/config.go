package config

import (
	"net/url"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const envPrefix = "STOREFRONT_"

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	OTLP     OTLPConfig     `koanf:"otlp"`
	Catalog  CatalogConfig  `koanf:"catalog"`
	Cart     CartConfig     `koanf:"cart"`
	Business BusinessConfig `koanf:"business"`
}

type ServerConfig struct {
	Host string `koanf:"host"`
	Port string `koanf:"port"`
}

type OTLPConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"serviceName"`
	Environment string `koanf:"environment"`
}

type CatalogConfig struct {
	Path string `koanf:"path"`
}

// CartConfig selects the persistence backend for the cart slot. Backend is one
// of "memory", "file" or "redis"; Key doubles as the redis key and is fixed for
// the lifetime of the process.
type CartConfig struct {
	Backend string      `koanf:"backend"`
	Key     string      `koanf:"key"`
	Path    string      `koanf:"path"`
	Redis   RedisConfig `koanf:"redis"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
}

// BusinessConfig carries everything that differs between the site variants:
// branding, contact channels and currency. The storefront logic itself is
// business-agnostic.
type BusinessConfig struct {
	Name     string        `koanf:"name"`
	Tagline  string        `koanf:"tagline"`
	Currency string        `koanf:"currency"`
	Contact  ContactConfig `koanf:"contact"`
}

type ContactConfig struct {
	Phone       string `koanf:"phone"`
	PhoneDigits string `koanf:"phoneDigits"`
	Email       string `koanf:"email"`
	Address     string `koanf:"address"`
	Hours       string `koanf:"hours"`
}

// Load reads the YAML config file and applies STOREFRONT_* environment
// overrides (STOREFRONT_SERVER_PORT=9090 overrides server.port).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "load config file %q", path)
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "load env overrides")
	}

	cfg := defaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: "8080"},
		OTLP: OTLPConfig{
			Endpoint:    "localhost:4317",
			ServiceName: "storefront-api",
			Environment: "development",
		},
		Catalog: CatalogConfig{Path: "data/products.json"},
		Cart: CartConfig{
			Backend: "file",
			Key:     "bakery-cart",
			Path:    "data/cart.json",
		},
	}
}

// WhatsAppURL builds a wa.me deep link carrying the given message, aimed at the
// business phone number.
func (b BusinessConfig) WhatsAppURL(message string) string {
	return "https://wa.me/" + b.Contact.PhoneDigits + "?text=" + escape(message)
}

// EmailURL builds a mailto link to the business address with subject and body
// pre-filled.
func (b BusinessConfig) EmailURL(subject, body string) string {
	return "mailto:" + b.Contact.Email + "?subject=" + escape(subject) + "&body=" + escape(body)
}

// PhoneURL builds a tel: link for the display phone number.
func (b BusinessConfig) PhoneURL() string {
	return "tel:" + b.Contact.Phone
}

// MapsURL builds a Google Maps search link for the business address.
func (b BusinessConfig) MapsURL() string {
	return "https://maps.google.com/maps?q=" + escape(b.Contact.Address)
}

// escape matches JavaScript's encodeURIComponent closely enough for wa.me and
// mailto consumers: spaces become %20, not +.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
