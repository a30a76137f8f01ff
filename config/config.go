package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	Evaluator Evaluator
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Evaluator configures the external answer-scoring service.
// Provider selects the implementation: "ml" (HTTP ml-service) or "gemini".
type Evaluator struct {
	Provider       string
	BaseURL        string
	TimeoutSeconds int
	GeminiAPIKey   string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("EVALUATOR_PROVIDER", "ml")
	viper.SetDefault("EVALUATOR_URL", "http://localhost:8000")
	viper.SetDefault("EVALUATOR_TIMEOUT_SECONDS", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Evaluator.Provider = viper.GetString("EVALUATOR_PROVIDER")
	config.Evaluator.BaseURL = viper.GetString("EVALUATOR_URL")
	config.Evaluator.TimeoutSeconds = viper.GetInt("EVALUATOR_TIMEOUT_SECONDS")
	config.Evaluator.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("evaluator_provider", config.Evaluator.Provider).Msg("Config loaded")
	return &config, nil
}
