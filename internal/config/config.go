package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	JWTSecret string
	TokenTTL  time.Duration

	// External rate source, e.g. https://v6.exchangerate-api.com/v6/<key>
	ExchangeBaseURL string
	// Country metadata source used at signup, e.g. https://restcountries.com/v3.1
	CountriesBaseURL string
	ExchangeTimeout  time.Duration
	RateCacheTTL     time.Duration

	IdempTTLSecs int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "expenses"),
		MySQLUser: getenv("MYSQL_USER", "expenses"),
		MySQLPass: getenv("MYSQL_PASS", "expenses"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		JWTSecret: getenv("JWT_SECRET", ""),
		TokenTTL:  time.Duration(getenvInt("TOKEN_TTL_HOURS", 30*24)) * time.Hour,

		ExchangeBaseURL:  getenv("EXCHANGE_RATE_BASE_URL", ""),
		CountriesBaseURL: getenv("COUNTRIES_BASE_URL", "https://restcountries.com/v3.1"),
		ExchangeTimeout:  time.Duration(getenvInt("EXCHANGE_TIMEOUT_SECONDS", 5)) * time.Second,
		RateCacheTTL:     time.Duration(getenvInt("RATE_CACHE_TTL_SECONDS", 600)) * time.Second,

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
