package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const defaultDBPassword = "12345678"

var defaultPorts = map[string]string{
	"mysql":    "3306",
	"postgres": "5432",
}

// Config 应用配置
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Port     string `env:"PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// 关系型数据库（目录 + 用户表）
	DBDriver       string `env:"DB_DRIVER" envDefault:"mysql"`
	DBHost         string `env:"DB_HOST" envDefault:"localhost"`
	DBPort         string `env:"DB_PORT"` // 缺省按驱动取 3306 / 5432
	DBUser         string `env:"DB_USER" envDefault:"root"`
	DBPassword     string `env:"DB_PASSWORD" envDefault:"12345678"`
	DBName         string `env:"DB_NAME" envDefault:"project2"`
	DBSSLMode      string `env:"DB_SSLMODE" envDefault:"disable"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`

	// 文档数据库（评论、片单、搜索日志）
	MongoURI         string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase    string `env:"MONGO_DATABASE" envDefault:"project2_nosql"`
	SearchLogTTLDays int    `env:"SEARCH_LOG_TTL_DAYS" envDefault:"30"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	AuthRateLimitRPS   float64 `env:"AUTH_RATE_LIMIT_RPS" envDefault:"5"`
	AuthRateLimitBurst int     `env:"AUTH_RATE_LIMIT_BURST" envDefault:"10"`
}

// Load 加载配置
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	switch cfg.DBDriver {
	case "mysql", "postgres", "sqlite":
	case "mariadb":
		cfg.DBDriver = "mysql"
	case "postgresql":
		cfg.DBDriver = "postgres"
	default:
		return nil, fmt.Errorf("config: unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	if strings.TrimSpace(cfg.DBPort) == "" {
		cfg.DBPort = defaultPorts[cfg.DBDriver]
	}

	return cfg, nil
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsesDefaultCredentials 是否仍在使用开发环境的默认数据库密码
func (c *Config) UsesDefaultCredentials() bool {
	return c.DBDriver != "sqlite" && c.DBPassword == defaultDBPassword
}

// DatabaseDSN 按驱动生成连接串（sqlite 时 DB_NAME 即文件路径）
func (c *Config) DatabaseDSN() string {
	switch c.DBDriver {
	case "postgres":
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
	case "sqlite":
		return c.DBName
	default:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
	}
}
