package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env     string
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	LLM     LLMConfig
	Storage StorageConfig
	Quiz    QuizConfig
	Logger  LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type JWTConfig struct {
	SecretKey  string
	TokenTTL   time.Duration
	CookieName string
}

type LLMConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type StorageConfig struct {
	Endpoint        string
	Bucket          string
	AccessKeyID     string
	AccessKeySecret string
	PublicBaseURL   string
}

type QuizConfig struct {
	// CertificateThreshold is the minimum score, as a percentage of the
	// quiz's total marks, required for certificate issuance.
	CertificateThreshold float64
}

type LoggerConfig struct {
	Level string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("server.cors_origins", "*")
	viper.SetDefault("db.ssl_mode", "disable")
	viper.SetDefault("jwt.token_ttl", 24)
	viper.SetDefault("jwt.cookie_name", "easyway_token")
	viper.SetDefault("llm.model", "gemini-1.5-flash")
	viper.SetDefault("llm.timeout", 20)
	viper.SetDefault("quiz.certificate_threshold", 60)
	viper.SetDefault("logger.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; env vars and defaults carry the load.
	}

	config := &Config{
		Env: viper.GetString("env"),
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			CORSOrigins:  viper.GetString("server.cors_origins"),
		},
		DB: DBConfig{
			Host:     viper.GetString("db.host"),
			Port:     viper.GetInt("db.port"),
			User:     viper.GetString("db.user"),
			Password: viper.GetString("db.password"),
			DBName:   viper.GetString("db.name"),
			SSLMode:  viper.GetString("db.ssl_mode"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		JWT: JWTConfig{
			SecretKey:  viper.GetString("jwt.secret_key"),
			TokenTTL:   viper.GetDuration("jwt.token_ttl") * time.Hour,
			CookieName: viper.GetString("jwt.cookie_name"),
		},
		LLM: LLMConfig{
			APIKey:  viper.GetString("llm.api_key"),
			Model:   viper.GetString("llm.model"),
			Timeout: viper.GetDuration("llm.timeout") * time.Second,
		},
		Storage: StorageConfig{
			Endpoint:        viper.GetString("storage.endpoint"),
			Bucket:          viper.GetString("storage.bucket"),
			AccessKeyID:     viper.GetString("storage.access_key_id"),
			AccessKeySecret: viper.GetString("storage.access_key_secret"),
			PublicBaseURL:   viper.GetString("storage.public_base_url"),
		},
		Quiz: QuizConfig{
			CertificateThreshold: viper.GetFloat64("quiz.certificate_threshold"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
		},
	}

	// Environment overrides for deployment without a config file.
	if env := os.Getenv("ENV"); env != "" {
		config.Env = env
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		config.DB.Host = host
	}
	if user := os.Getenv("DB_USER"); user != "" {
		config.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		config.DB.DBName = dbname
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.JWT.SecretKey = secret
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		config.LLM.APIKey = key
	}

	return config, nil
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.DBName,
		c.DB.SSLMode,
	)
}
