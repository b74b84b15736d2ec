package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	App struct {
		// BaseURL is the public URL of this API, used to build the
		// verification links embedded in registration emails.
		BaseURL string `yaml:"base_url"`
	} `yaml:"app"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Auth struct {
		// SessionSecret and VerificationSecret sign different trust
		// domains; a verification token must never pass as a session
		// token, so they must differ.
		SessionSecret      string `yaml:"session_secret"`
		VerificationSecret string `yaml:"verification_secret"`
	} `yaml:"auth"`

	Redis struct {
		// Addr enables the per-IP rate limiter on the credential
		// endpoints when set (e.g. "localhost:6379").
		Addr string `yaml:"addr"`
	} `yaml:"redis"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig populates AppConfig from environment variables when
// DATABASE_URL is set, otherwise from the yaml file at CONFIG_PATH
// (default config/config.yaml). Missing signing secrets are fatal.
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
	} else {
		cfg.Database.DSN = dbURL
		cfg.Server.Host = os.Getenv("SERVER_HOST")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.App.BaseURL = os.Getenv("APP_BASE_URL")
		cfg.Auth.SessionSecret = os.Getenv("SESSION_SECRET")
		cfg.Auth.VerificationSecret = os.Getenv("VERIFICATION_SECRET")
		cfg.Email.SMTPHost = os.Getenv("MAIL_HOST")
		cfg.Email.SMTPPort, _ = strconv.Atoi(os.Getenv("MAIL_PORT"))
		cfg.Email.SMTPUsername = os.Getenv("MAIL_USER")
		cfg.Email.SMTPPassword = os.Getenv("MAIL_PASS")
		cfg.Email.FromEmail = os.Getenv("MAIL_FROM")
		cfg.Email.FromName = os.Getenv("MAIL_FROM_NAME")
		cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
		cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
		cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")
	}

	applyDefaults(&cfg)
	validate(&cfg)

	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.App.BaseURL == "" {
		cfg.App.BaseURL = "http://localhost:3000"
	}
	if cfg.Email.FromName == "" {
		cfg.Email.FromName = "ChangaYa!"
	}
}

// validate enforces the fatal startup conditions. The server must not come
// up able to mint unsigned or cross-domain tokens.
func validate(cfg *Config) {
	if cfg.Auth.SessionSecret == "" {
		log.Fatal("SESSION_SECRET (auth.session_secret) is required")
	}
	if cfg.Auth.VerificationSecret == "" {
		log.Fatal("VERIFICATION_SECRET (auth.verification_secret) is required")
	}
	if cfg.Auth.SessionSecret == cfg.Auth.VerificationSecret {
		log.Fatal("session and verification secrets must differ")
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
