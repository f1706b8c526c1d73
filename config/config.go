package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Engine
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type Kafka struct {
	Brokers            string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	TopupConsumerGroup string `env:"KAFKA_TOPUP_GROUP_ID" envDefault:"topup-service"`
	PublishTopics      string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"topups.completed,topups.dlq"`
	SubscriberTopics   string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"topups.gateway.callbacks"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

// Engine holds the confirmation-engine tuning knobs. The defaults give the
// payer ten seconds to react to the prompt, then poll every five seconds
// for up to two minutes.
type Engine struct {
	MinAmount                string        `env:"MIN_AMOUNT" envDefault:"10"`
	MaxAmount                string        `env:"MAX_AMOUNT" envDefault:"150000"`
	PollInterval             time.Duration `env:"POLL_INTERVAL" envDefault:"5s"`
	MaxPollAttempts          int           `env:"MAX_POLL_ATTEMPTS" envDefault:"24"`
	AuthorizationGracePeriod time.Duration `env:"AUTH_GRACE_PERIOD" envDefault:"10s"`
	SandboxSucceedAfterPolls int           `env:"SANDBOX_SUCCEED_AFTER_POLLS" envDefault:"2"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

// AmountBounds parses the configured charge limits. Bad values fall back to
// the defaults rather than silently admitting any amount.
func (e Engine) AmountBounds() (decimal.Decimal, decimal.Decimal) {
	min, err := decimal.NewFromString(e.MinAmount)
	if err != nil {
		logrus.Errorf("invalid MIN_AMOUNT %q, using 10", e.MinAmount)
		min = decimal.NewFromInt(10)
	}
	max, err := decimal.NewFromString(e.MaxAmount)
	if err != nil {
		logrus.Errorf("invalid MAX_AMOUNT %q, using 150000", e.MaxAmount)
		max = decimal.NewFromInt(150000)
	}
	return min, max
}
