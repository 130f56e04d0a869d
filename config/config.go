package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	AI         AI
	Redis      Redis
	Assessment Assessment
	Log        Log
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
	SSLMode  string
}

// AI selects and configures the text generation backend used for both
// question generation and grading.
type AI struct {
	Provider     string // "gemini" or "openai"
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string
	Concurrency  int
}

type Redis struct {
	Addr         string
	Password     string
	PoolCacheTTL time.Duration
}

type Assessment struct {
	QuestionsPerSkill int
	QuestionSeed      int64
	TTL               time.Duration
}

type Log struct {
	Level  string
	Pretty bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	setDefaults()

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
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.AI.Provider = strings.ToLower(strings.TrimSpace(viper.GetString("AI_PROVIDER")))
	config.AI.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	config.AI.GeminiModel = viper.GetString("GEMINI_MODEL")
	config.AI.OpenAIAPIKey = viper.GetString("OPENAI_API_KEY")
	config.AI.OpenAIModel = viper.GetString("OPENAI_MODEL")
	config.AI.Concurrency = viper.GetInt("AI_CONCURRENCY")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.PoolCacheTTL = time.Duration(viper.GetInt("POOL_CACHE_TTL_MINUTES")) * time.Minute

	config.Assessment.QuestionsPerSkill = viper.GetInt("QUESTIONS_PER_SKILL")
	config.Assessment.QuestionSeed = viper.GetInt64("QUESTION_SEED")
	config.Assessment.TTL = time.Duration(viper.GetInt("ASSESSMENT_TTL_HOURS")) * time.Hour

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.Pretty = viper.GetBool("LOG_PRETTY")

	log.Info().
		Str("port", config.Server.Port).
		Str("databaseHost", config.Database.Host).
		Str("aiProvider", config.AI.Provider).
		Bool("redisEnabled", config.Redis.Addr != "").
		Int("questionsPerSkill", config.Assessment.QuestionsPerSkill).
		Msg("Config loaded")
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("AI_PROVIDER", "gemini")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("AI_CONCURRENCY", 4)
	viper.SetDefault("POOL_CACHE_TTL_MINUTES", 60)
	viper.SetDefault("QUESTIONS_PER_SKILL", 3)
	viper.SetDefault("QUESTION_SEED", 0)
	viper.SetDefault("ASSESSMENT_TTL_HOURS", 7*24)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)
}
