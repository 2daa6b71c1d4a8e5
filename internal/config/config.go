package config

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

type Config struct {
	Addr            string
	LogLevel        string
	CatalogPath     string
	RabbitMQURL     string
	RabbitMQQueue   string
	ChannelPoolSize int
	ShutdownTimeout time.Duration
}

// Flags every setting can also come from the environment
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "addr", Value: ":9091", Usage: "HTTP listen address", EnvVars: []string{"STORE_ADDR"}},
		&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error", EnvVars: []string{"STORE_LOG_LEVEL"}},
		&cli.StringFlag{Name: "catalog", Usage: "YAML catalog file; the built-in catalog is used when empty", EnvVars: []string{"STORE_CATALOG"}},
		&cli.StringFlag{Name: "rabbitmq-url", Usage: "AMQP URL for receipt publishing; disabled when empty", EnvVars: []string{"STORE_RABBITMQ_URL"}},
		&cli.StringFlag{Name: "rabbitmq-queue", Value: "store_receipts", Usage: "queue receiving checkout receipts", EnvVars: []string{"STORE_RABBITMQ_QUEUE"}},
		&cli.IntFlag{Name: "channel-pool-size", Value: 10, Usage: "AMQP channels kept open", EnvVars: []string{"STORE_CHANNEL_POOL_SIZE"}},
		&cli.DurationFlag{Name: "shutdown-timeout", Value: 5 * time.Second, Usage: "graceful shutdown deadline", EnvVars: []string{"STORE_SHUTDOWN_TIMEOUT"}},
	}
}

// FromContext reads the parsed flags.
func FromContext(c *cli.Context) (*Config, error) {
	cfg := &Config{
		Addr:            c.String("addr"),
		LogLevel:        c.String("log-level"),
		CatalogPath:     c.String("catalog"),
		RabbitMQURL:     c.String("rabbitmq-url"),
		RabbitMQQueue:   c.String("rabbitmq-queue"),
		ChannelPoolSize: c.Int("channel-pool-size"),
		ShutdownTimeout: c.Duration("shutdown-timeout"),
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.RabbitMQURL != "" {
		if c.RabbitMQQueue == "" {
			return fmt.Errorf("rabbitmq-queue is required with rabbitmq-url")
		}
		if c.ChannelPoolSize <= 0 {
			return fmt.Errorf("channel-pool-size must be positive, got %d", c.ChannelPoolSize)
		}
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown-timeout must be positive")
	}
	return nil
}
