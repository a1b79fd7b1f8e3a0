package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type StorageConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Region        string `mapstructure:"region"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	Bucket        string `mapstructure:"bucket"`
	PublicBucket  bool   `mapstructure:"public_bucket"`
	SignedURLTTLS int    `mapstructure:"signed_url_ttl_seconds"`
	MaxUploadMB   int64  `mapstructure:"max_upload_mb"`
}

type LoginLimitConfig struct {
	MaxAttempts     int `mapstructure:"max_attempts"`
	WindowMinutes   int `mapstructure:"window_minutes"`
	LockoutMinutes  int `mapstructure:"lockout_minutes"`
}

type APILimitConfig struct {
	Limit         int `mapstructure:"limit"`
	WindowSeconds int `mapstructure:"window_seconds"`
}

type AuthConfig struct {
	// AdminPassword may hold either the plaintext admin password or a
	// bcrypt hash (recognized by its $2 prefix). Always supplied via env.
	AdminPassword   string           `mapstructure:"admin_password"`
	SessionTTLHours int              `mapstructure:"session_ttl_hours"`
	LoginLimit      LoginLimitConfig `mapstructure:"login_limit"`
	APILimit        APILimitConfig   `mapstructure:"api_limit"`
}
