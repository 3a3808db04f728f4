package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	SendGrid  SendGridConfig  `yaml:"sendgrid"`
	Admin     AdminConfig     `yaml:"admin"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig contains PostgreSQL connection settings. User/Password is the
// restricted role used by the public signup endpoint; AdminUser/AdminPassword
// is the privileged role required by the admin endpoints. Admin credentials
// are optional: without them the admin surface responds 503.
type DatabaseConfig struct {
	Host          string `yaml:"host"`
	Port          int    `yaml:"port"`
	User          string `yaml:"user"`
	Password      string `yaml:"password"`
	AdminUser     string `yaml:"admin_user"`
	AdminPassword string `yaml:"admin_password"`
	Database      string `yaml:"database"`
	SSLMode       string `yaml:"ssl_mode"`
	MigrationsDir string `yaml:"migrations_dir"`
}

// SendGridConfig contains outbound email settings. An empty APIKey disables
// email sending entirely.
type SendGridConfig struct {
	APIKey           string `yaml:"api_key"`
	FromEmail        string `yaml:"from_email"`
	FromName         string `yaml:"from_name"`
	CoordinatorEmail string `yaml:"coordinator_email"`
}

// AdminConfig contains admin API token settings. An empty JWTSecret leaves the
// admin routes without request-level auth.
type AdminConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

// RateLimitConfig caps signup attempts per source IP over a rolling window.
type RateLimitConfig struct {
	SignupRequests      int `yaml:"signup_requests"`
	SignupWindowMinutes int `yaml:"signup_window_minutes"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	WeeklyDigest string `yaml:"weekly_digest"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_ADMIN_USER"); val != "" {
		c.Database.AdminUser = val
	}
	if val := os.Getenv("DB_ADMIN_PASSWORD"); val != "" {
		c.Database.AdminPassword = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// SendGrid
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.SendGrid.APIKey = val
	}
	if val := os.Getenv("SENDGRID_FROM_EMAIL"); val != "" {
		c.SendGrid.FromEmail = val
	}
	if val := os.Getenv("SENDGRID_FROM_NAME"); val != "" {
		c.SendGrid.FromName = val
	}
	if val := os.Getenv("COORDINATOR_EMAIL"); val != "" {
		c.SendGrid.CoordinatorEmail = val
	}

	// Admin token
	if val := os.Getenv("ADMIN_JWT_SECRET"); val != "" {
		c.Admin.JWTSecret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("ALLOWED_ORIGINS"); val != "" {
		c.Server.AllowedOrigins = strings.Split(val, ",")
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Database.AdminUser != "" && c.Database.AdminPassword == "" {
		return fmt.Errorf("database admin password is required when admin user is set")
	}

	// SendGrid validation: only meaningful when sending is enabled
	if c.SendGrid.APIKey != "" && c.SendGrid.FromEmail == "" {
		return fmt.Errorf("sendgrid from_email is required when api_key is set")
	}

	// Admin token validation
	if c.Admin.JWTSecret != "" && len(c.Admin.JWTSecret) < 32 {
		return fmt.Errorf("admin JWT secret must be at least 32 characters")
	}

	// Rate limit defaults: 5 attempts per rolling hour
	if c.RateLimit.SignupRequests == 0 {
		c.RateLimit.SignupRequests = 5
	}
	if c.RateLimit.SignupWindowMinutes == 0 {
		c.RateLimit.SignupWindowMinutes = 60
	}

	// Scheduler defaults
	if c.Scheduler.WeeklyDigest == "" {
		c.Scheduler.WeeklyDigest = "0 0 9 * * 1" // Mondays at 9 AM UTC
	}

	return nil
}

// HasAdminCredentials reports whether the privileged datastore role is configured.
func (c *Config) HasAdminCredentials() bool {
	return c.Database.AdminUser != "" && c.Database.AdminPassword != ""
}

// GetDatabaseConnectionString returns the connection string for the restricted role.
func (c *Config) GetDatabaseConnectionString() string {
	return c.connectionString(c.Database.User, c.Database.Password)
}

// GetAdminDatabaseConnectionString returns the connection string for the
// privileged role. Callers must check HasAdminCredentials first.
func (c *Config) GetAdminDatabaseConnectionString() string {
	return c.connectionString(c.Database.AdminUser, c.Database.AdminPassword)
}

func (c *Config) connectionString(user, password string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		user,
		password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
