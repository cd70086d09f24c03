package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port       int  `env:"PORT" envDefault:"8080"`
	IsTestMode bool `env:"TEST_MODE"`

	PostgresqlURL  string `env:"POSTGRESQL_URL,required"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"./migrations"`
	RedisURL       string `env:"REDIS_URL,required"`

	RabbitmqURL                    string `env:"RABBITMQ_URL,required"`
	RabbitmqDelayedExchange        string `env:"RABBITMQ_DELAYED_EXCHANGE" envDefault:"notifications.delayed"`
	RabbitmqNotificationReadyQueue string `env:"RABBITMQ_NOTIFICATION_READY_QUEUE" envDefault:"notifications.ready"`
	RabbitmqDeadLetterQueue        string `env:"RABBITMQ_DEAD_LETTER_QUEUE" envDefault:"notifications.dead"`

	DispatchSchedulingPeriod time.Duration `env:"DISPATCH_SCHEDULING_PERIOD" envDefault:"1m"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	SentryDsn      string   `env:"SENTRY_DSN"`

	AwsRegion                string `env:"AWS_REGION" envDefault:"us-east-1"`
	AwsAccessKey             string `env:"AWS_ACCESS_KEY"`
	AwsSecretKey             string `env:"AWS_SECRET_KEY"`
	AwsEmailSender           string `env:"AWS_EMAIL_SENDER"`
	AwsEmailReminderTemplate string `env:"AWS_EMAIL_REMINDER_TEMPLATE" envDefault:"reminder"`

	SpoonacularBaseURL        string        `env:"SPOONACULAR_BASE_URL"`
	SpoonacularAPIKey         string        `env:"SPOONACULAR_API_KEY"`
	SpoonacularUserEmail      string        `env:"SPOONACULAR_USER_EMAIL"`
	SpoonacularRequestTimeout time.Duration `env:"SPOONACULAR_REQUEST_TIMEOUT" envDefault:"10s"`

	PushGatewayURL            string        `env:"PUSH_GATEWAY_URL,required"`
	PushGatewayToken          string        `env:"PUSH_GATEWAY_TOKEN"`
	PushGatewayRequestTimeout time.Duration `env:"PUSH_GATEWAY_REQUEST_TIMEOUT" envDefault:"10s"`

	MealPlanRateLimitPerHour uint16 `env:"MEAL_PLAN_RATE_LIMIT_PER_HOUR" envDefault:"10"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	return cfg, nil
}
