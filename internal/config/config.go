package config

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds every process-wide setting. It is built once in main and
// passed down explicitly; packages never read the environment themselves.
type Config struct {
	Port     string
	Env      string
	MongoURI string
	MongoDB  string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_DB", "catalog")
	viper.AutomaticEnv()

	return Config{
		Port:     viper.GetString("PORT"),
		Env:      viper.GetString("APP_ENV"),
		MongoURI: viper.GetString("MONGODB_URI"),
		MongoDB:  viper.GetString("MONGODB_DB"),

		CloudinaryCloudName: viper.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    viper.GetString("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: viper.GetString("CLOUDINARY_API_SECRET"),
	}
}

// IsDevelopment reports whether the process runs in a development-like
// environment. Error responses include failure detail only in this mode.
func (c Config) IsDevelopment() bool {
	return c.Env != "production"
}
