package config

// Config is the configuration root.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	DB          DBConfig          `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	MinIO       MinIOConfig       `mapstructure:"minio"`
	Flutterwave FlutterwaveConfig `mapstructure:"flutterwave"`
	Email       EmailConfig       `mapstructure:"email"`
	Push        PushConfig        `mapstructure:"push"`
}

// ServerConfig HTTP server settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// DBConfig database settings.
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// MinIOConfig object storage settings.
type MinIOConfig struct {
	Endpoint       string `mapstructure:"endpoint"`
	PublicEndpoint string `mapstructure:"public_endpoint"`
	AccessKey      string `mapstructure:"access_key"`
	SecretKey      string `mapstructure:"secret_key"`
	Bucket         string `mapstructure:"bucket"`
	UseSSL         bool   `mapstructure:"use_ssl"`
}

// FlutterwaveConfig payment gateway settings.
type FlutterwaveConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	SecretKey string `mapstructure:"secret_key"`
	Currency  string `mapstructure:"currency"`
	LogoURL   string `mapstructure:"logo_url"`
}

// EmailConfig transactional email (Brevo) settings.
type EmailConfig struct {
	BaseURL     string `mapstructure:"base_url"`
	APIKey      string `mapstructure:"api_key"`
	FromName    string `mapstructure:"from_name"`
	FromAddress string `mapstructure:"from_address"`
}

// PushConfig Expo push settings.
type PushConfig struct {
	BaseURL string `mapstructure:"base_url"`
}
