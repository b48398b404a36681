package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoConnectionString string
	MongoDatabase         string
	MongoConnectTimeout   time.Duration
	MigrateOnStart        bool

	HTTPPort string

	OperatorWorkers   int
	OperatorQueueSize int

	AMQPURL      string
	AMQPExchange string
}

// ProcessEnvironmentVariables builds the configuration from the environment. A .env file in the
// working directory is loaded first when present. The connection string may be empty here; it is
// only required when the first connection is attempted.
func ProcessEnvironmentVariables() (*Config, error) {
	_ = godotenv.Load()

	env := Config{
		MongoConnectionString: os.Getenv("MONGODB_CONN"),
		MongoDatabase:         getEnv("MONGODB_DATABASE", "accountance_db"),
		MongoConnectTimeout:   10 * time.Second,
		HTTPPort:              getEnv("HTTP_PORT", "9446"),
		OperatorWorkers:       1,
		OperatorQueueSize:     1000,
		AMQPURL:               os.Getenv("AMQP_URL"),
		AMQPExchange:          getEnv("AMQP_EXCHANGE", "budget"),
	}

	var err error
	if env.MongoConnectTimeout, err = getEnvDuration("MONGODB_CONNECT_TIMEOUT", env.MongoConnectTimeout); err != nil {
		return nil, err
	}
	if env.MigrateOnStart, err = getEnvBool("MIGRATE_ON_START", false); err != nil {
		return nil, err
	}
	if env.OperatorWorkers, err = getEnvInt("OPERATOR_WORKERS", env.OperatorWorkers); err != nil {
		return nil, err
	}
	if env.OperatorQueueSize, err = getEnvInt("OPERATOR_QUEUE_SIZE", env.OperatorQueueSize); err != nil {
		return nil, err
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

// Validate checks value ranges. A missing MONGODB_CONN is deliberately not reported.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.HTTPPort); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.HTTPPort))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.MongoDatabase == "" {
		problems = append(problems, "database name cannot be empty")
	}
	if c.MongoConnectTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid connect timeout %v: must be positive", c.MongoConnectTimeout))
	}
	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}
	if c.OperatorQueueSize < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator queue size %d: must be at least 1", c.OperatorQueueSize))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL: %v", err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); len(value) != 0 {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if len(value) == 0 {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return i, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if len(value) == 0 {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return d, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if len(value) == 0 {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("parsing %s: %w", key, err)
	}
	return b, nil
}
