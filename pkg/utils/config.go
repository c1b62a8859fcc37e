package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Mongo   MongoConfig
	JWT     JWTConfig
	Blob    BlobConfig
	Metrics MetricsConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type MongoConfig struct {
	URI      string
	Database string
}

type JWTConfig struct {
	Secret        string
	ExpiryMinutes int
}

type BlobConfig struct {
	Bucket        string
	Region        string
	UploadTimeout time.Duration
}

type MetricsConfig struct {
	Enabled bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("MONGO_DB", "wastecare_sesnet_db")
	viper.SetDefault("JWT_EXPIRY_MINUTES", 120)
	viper.SetDefault("UPLOAD_TIMEOUT_SECONDS", 30)
	viper.SetDefault("METRICS_ENABLED", false)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET_KEY"),
			ExpiryMinutes: viper.GetInt("JWT_EXPIRY_MINUTES"),
		},
		Blob: BlobConfig{
			Bucket:        viper.GetString("BUCKET_NAME"),
			Region:        viper.GetString("AWS_REGION"),
			UploadTimeout: time.Duration(viper.GetInt("UPLOAD_TIMEOUT_SECONDS")) * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
		},
	}

	return config, nil
}
