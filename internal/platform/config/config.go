package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "config/config.yaml"

	ModeDev     = "dev"
	ModeRelease = "release"

	DriverMySQL  = "mysql"
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

// Environment overrides. Secrets are only ever read from here (or .env), never from the YAML file in the repo.
const (
	EnvConfigPath     = "EPASS_CONFIG"
	EnvPort           = "EPASS_PORT"
	EnvAllowedOrigins = "EPASS_ALLOWED_ORIGINS"
	EnvDBPassword     = "EPASS_DB_PASSWORD"
	EnvMongoURI       = "EPASS_MONGO_URI"
	EnvPublicBaseURL  = "EPASS_PUBLIC_BASE_URL"
)

type ServerConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	PublicBaseURL  string   `yaml:"public_base_url"`
	TLSCert        string   `yaml:"tls_cert"`
	TLSKey         string   `yaml:"tls_key"`
}

type MySQLConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type MongoConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type DatabaseConfig struct {
	Driver string      `yaml:"driver"`
	MySQL  MySQLConfig `yaml:"mysql"`
	Mongo  MongoConfig `yaml:"mongo"`
}

type StorageConfig struct {
	PublicDir string `yaml:"public_dir"`
	PDFDir    string `yaml:"pdf_dir"`
}

type RenderConfig struct {
	Timezone    string `yaml:"timezone"`
	Institution string `yaml:"institution"`
	ShortName   string `yaml:"short_name"`
	QRCode      bool   `yaml:"qr_code"`
	Compress    bool   `yaml:"compress"`
}

type Config struct {
	Version  string         `yaml:"version"`
	Mode     string         `yaml:"mode"`
	LogLevel string         `yaml:"log_level"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Render   RenderConfig   `yaml:"render"`
}

// Default returns the values used for anything the YAML file leaves out.
func Default() Config {
	return Config{
		Mode:     ModeDev,
		LogLevel: "info",
		Server: ServerConfig{
			Port: 3001,
		},
		Database: DatabaseConfig{
			Driver: DriverMySQL,
			MySQL:  MySQLConfig{Host: "127.0.0.1", Port: 3306, Username: "epass", DBName: "epass"},
			Mongo:  MongoConfig{Database: "epass", Collection: "visitors"},
		},
		Storage: StorageConfig{
			PublicDir: "public",
			PDFDir:    "public/pdfs",
		},
		Render: RenderConfig{
			Timezone:    "Asia/Kolkata",
			Institution: "Brindavan Group of Institutions",
			ShortName:   "BGI",
			QRCode:      true,
			Compress:    true,
		},
	}
}

// Load reads .env (if any), the YAML file at path, then applies environment overrides.
// An empty path falls back to $EPASS_CONFIG and then DefaultConfigPath.
func Load(path string) (*Config, error) {
	// .env is optional; the process environment wins when both are set
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := Default()
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvPort); ok && v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", EnvPort, err)
		}
		c.Server.Port = p
	}
	if v, ok := os.LookupEnv(EnvAllowedOrigins); ok && v != "" {
		c.Server.AllowedOrigins = splitList(v)
	}
	if v, ok := os.LookupEnv(EnvPublicBaseURL); ok {
		c.Server.PublicBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvDBPassword); ok {
		c.Database.MySQL.Password = v
	}
	if v, ok := os.LookupEnv(EnvMongoURI); ok {
		c.Database.Mongo.URI = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Mode != ModeDev && c.Mode != ModeRelease {
		return fmt.Errorf("mode must be %q or %q, got %q", ModeDev, ModeRelease, c.Mode)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		return errors.New("server.tls_cert and server.tls_key must be set together")
	}
	switch c.Database.Driver {
	case DriverMySQL:
		if c.Database.MySQL.Host == "" || c.Database.MySQL.DBName == "" {
			return errors.New("database.mysql.host and database.mysql.dbname are required")
		}
	case DriverMongo:
		if c.Database.Mongo.URI == "" {
			return fmt.Errorf("mongo uri is required (set %s)", EnvMongoURI)
		}
		if c.Database.Mongo.Database == "" || c.Database.Mongo.Collection == "" {
			return errors.New("database.mongo.database and database.mongo.collection are required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown database.driver %q", c.Database.Driver)
	}
	if c.Storage.PublicDir == "" || c.Storage.PDFDir == "" {
		return errors.New("storage.public_dir and storage.pdf_dir are required")
	}
	if _, err := time.LoadLocation(c.Render.Timezone); err != nil {
		return fmt.Errorf("render.timezone: %w", err)
	}
	return nil
}

// Location is the fixed zone pass timestamps are printed in. Validate has already checked it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Render.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *Config) TLSEnabled() bool {
	return c.Server.TLSCert != "" && c.Server.TLSKey != ""
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
