package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageDriverDisk = "disk"
	StorageDriverS3   = "s3"
)

type AppConfig struct {
	AppEnv           string        `mapstructure:"APP_ENV"`
	Port             string        `mapstructure:"PORT"`
	APIPrefix        string        `mapstructure:"API_PREFIX"`
	DBHost           string        `mapstructure:"DB_HOST"`
	DBPort           string        `mapstructure:"DB_PORT"`
	DBUser           string        `mapstructure:"DB_USER"`
	DBPassword       string        `mapstructure:"DB_PASSWORD"`
	DBName           string        `mapstructure:"DB_NAME"`
	DBSSLMode        string        `mapstructure:"DB_SSLMODE"`
	AdminUsername    string        `mapstructure:"ADMIN_USERNAME"`
	AdminPassword    string        `mapstructure:"ADMIN_PASSWORD"`
	JWTSecret        string        `mapstructure:"JWT_SECRET"`
	JWTTTL           time.Duration `mapstructure:"JWT_TTL"`
	UploadDir        string        `mapstructure:"UPLOAD_DIR"`
	UploadMaxBytes   int64         `mapstructure:"UPLOAD_MAX_BYTES"`
	StorageDriver    string        `mapstructure:"STORAGE_DRIVER"`
	AWSEndpoint      string        `mapstructure:"AWS_ENDPOINT"`
	AWSBucket        string        `mapstructure:"AWS_BUCKET"`
	AWSDefaultRegion string        `mapstructure:"AWS_DEFAULT_REGION"`
	AWSAccessKey     string        `mapstructure:"AWS_ACCESS_KEY"`
	AWSSecretKey     string        `mapstructure:"AWS_SECRET_KEY"`
	RabbitMQURL      string        `mapstructure:"RABBITMQ_URL"`
	ServiceName      string        `mapstructure:"SERVICE_NAME"`
	GRPCPort         string        `mapstructure:"GRPC_PORT"`
	CORSAllowOrigins string        `mapstructure:"CORS_ALLOW_ORIGINS"`
}

func Read() *AppConfig {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	bindEnvVariables()
	setDefaults()

	var appConfig AppConfig
	err := viper.Unmarshal(&appConfig)
	if err != nil {
		panic(fmt.Errorf("fatal error unmarshalling config: %w", err))
	}

	return &appConfig
}

// Validate reports settings the server cannot start without.
func (c *AppConfig) Validate() error {
	var errs []error

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.AdminUsername == "" || c.AdminPassword == "" {
		errs = append(errs, errors.New("ADMIN_USERNAME and ADMIN_PASSWORD are required"))
	}
	if c.UploadMaxBytes <= 0 {
		errs = append(errs, errors.New("UPLOAD_MAX_BYTES must be positive"))
	}

	switch c.StorageDriver {
	case StorageDriverDisk:
		if c.UploadDir == "" {
			errs = append(errs, errors.New("UPLOAD_DIR is required for the disk storage driver"))
		}
	case StorageDriverS3:
		if c.AWSBucket == "" {
			errs = append(errs, errors.New("AWS_BUCKET is required for the s3 storage driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver))
	}

	return errors.Join(errs...)
}

func (c *AppConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *AppConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func bindEnvVariables() {
	_ = viper.BindEnv("APP_ENV")
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("API_PREFIX")
	_ = viper.BindEnv("DB_HOST")
	_ = viper.BindEnv("DB_PORT")
	_ = viper.BindEnv("DB_USER")
	_ = viper.BindEnv("DB_PASSWORD")
	_ = viper.BindEnv("DB_NAME")
	_ = viper.BindEnv("DB_SSLMODE")
	_ = viper.BindEnv("ADMIN_USERNAME")
	_ = viper.BindEnv("ADMIN_PASSWORD")
	_ = viper.BindEnv("JWT_SECRET")
	_ = viper.BindEnv("JWT_TTL")
	_ = viper.BindEnv("UPLOAD_DIR")
	_ = viper.BindEnv("UPLOAD_MAX_BYTES")
	_ = viper.BindEnv("STORAGE_DRIVER")
	_ = viper.BindEnv("AWS_ENDPOINT")
	_ = viper.BindEnv("AWS_BUCKET")
	_ = viper.BindEnv("AWS_DEFAULT_REGION")
	_ = viper.BindEnv("AWS_ACCESS_KEY")
	_ = viper.BindEnv("AWS_SECRET_KEY")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("SERVICE_NAME")
	_ = viper.BindEnv("GRPC_PORT")
	_ = viper.BindEnv("CORS_ALLOW_ORIGINS")
}

func setDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("API_PREFIX", "/api")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "central_blessindo_db")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "password123")
	viper.SetDefault("JWT_TTL", "24h")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("UPLOAD_MAX_BYTES", 5*1024*1024)
	viper.SetDefault("STORAGE_DRIVER", StorageDriverDisk)
	viper.SetDefault("SERVICE_NAME", "company-site")
	viper.SetDefault("GRPC_PORT", "9090")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
}
