package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort        int           `envconfig:"HTTP_PORT"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT"`

	DBHost     string `envconfig:"DB_HOST"`
	DBPort     string `envconfig:"DB_PORT"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBSslMode  string `envconfig:"DB_SSLMODE"`

	JWTSecret string        `envconfig:"JWT_SECRET"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL"`

	SMTPHost     string        `envconfig:"SMTP_HOST"`
	SMTPPort     int           `envconfig:"SMTP_PORT"`
	SMTPUsername string        `envconfig:"SMTP_USERNAME"`
	SMTPPassword string        `envconfig:"SMTP_PASSWORD"`
	SMTPFrom     string        `envconfig:"SMTP_FROM"`
	SMTPTimeout  time.Duration `envconfig:"SMTP_TIMEOUT"`

	S3Bucket          string `envconfig:"S3_BUCKET"`
	S3Region          string `envconfig:"S3_REGION"`
	S3Endpoint        string `envconfig:"S3_ENDPOINT"`
	S3AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY"`
	S3PublicBaseURL   string `envconfig:"S3_PUBLIC_BASE_URL"`
	S3UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE"`

	CORSOrigins      []string `envconfig:"CORS_ORIGINS"`
	WSAllowedOrigins []string `envconfig:"WS_ALLOWED_ORIGINS"`

	NotificationRetrySchedule string `envconfig:"NOTIFICATION_RETRY_SCHEDULE"`
	NotificationRetryCapacity int    `envconfig:"NOTIFICATION_RETRY_CAPACITY"`
}

// LoadConfig reads envFile when it exists, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("process environment config: %w", err)
	}
	c.applyDefaults()
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.HTTPPort == 0 {
		c.HTTPPort = 8080
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	if c.DBPort == "" {
		c.DBPort = "5432"
	}
	if c.DBSslMode == "" {
		c.DBSslMode = "disable"
	}
	if c.JWTTTL == 0 {
		c.JWTTTL = 24 * time.Hour
	}
	if c.SMTPPort == 0 {
		c.SMTPPort = 587
	}
	if c.SMTPTimeout == 0 {
		c.SMTPTimeout = 10 * time.Second
	}
	if c.S3Region == "" {
		c.S3Region = "us-east-1"
	}
	if c.NotificationRetryCapacity == 0 {
		c.NotificationRetryCapacity = 1000
	}
}

// ValidateDatabase checks the settings every command needs.
func (c Config) ValidateDatabase() error {
	var errList []error
	if c.DBHost == "" {
		errList = append(errList, errors.New("set DB_HOST"))
	}
	if c.DBUser == "" {
		errList = append(errList, errors.New("set DB_USER"))
	}
	if c.DBName == "" {
		errList = append(errList, errors.New("set DB_NAME"))
	}
	return errors.Join(errList...)
}

// ValidateServer checks the settings the HTTP server needs on top of the
// database.
func (c Config) ValidateServer() error {
	var errList []error
	errList = append(errList, c.ValidateDatabase())
	if c.JWTSecret == "" {
		errList = append(errList, errors.New("set JWT_SECRET"))
	}
	if c.S3Bucket == "" {
		errList = append(errList, errors.New("set S3_BUCKET"))
	}
	if c.SMTPHost == "" || c.SMTPFrom == "" {
		errList = append(errList, errors.New("set SMTP_HOST and SMTP_FROM"))
	}
	return errors.Join(errList...)
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
