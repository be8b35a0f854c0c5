package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	NotifierLog     = "log"
	NotifierEmailJS = "emailjs"
	NotifierSNS     = "sns"
)

// Config holds all application configuration
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Logger       LoggerConfig       `mapstructure:"logger"`
	Leave        LeaveConfig        `mapstructure:"leave"`
	Notification NotificationConfig `mapstructure:"notification"`
	Redis        RedisConfig        `mapstructure:"redis"`
	Kafka        KafkaConfig        `mapstructure:"kafka"`
	RateLimit    RateLimitConfig    `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// LeaveConfig seeds the per-form balances and controls form session lifetime.
type LeaveConfig struct {
	SickDays      int           `mapstructure:"sick_days"`
	CasualDays    int           `mapstructure:"casual_days"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type NotificationConfig struct {
	Driver  string        `mapstructure:"driver"`
	Timeout time.Duration `mapstructure:"timeout"`
	EmailJS EmailJSConfig `mapstructure:"emailjs"`
	SNS     SNSConfig     `mapstructure:"sns"`
}

type EmailJSConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceID   string `mapstructure:"service_id"`
	TemplateID  string `mapstructure:"template_id"`
	PublicKey   string `mapstructure:"public_key"`
	AccessToken string `mapstructure:"access_token"`
}

type SNSConfig struct {
	TopicARN string `mapstructure:"topic_arn"`
	Region   string `mapstructure:"region"`
}

// RedisConfig is optional; an empty Addr disables idempotency.
type RedisConfig struct {
	Addr           string        `mapstructure:"addr"`
	MaxRetries     int           `mapstructure:"max_retries"`
	IdempotencyTTL time.Duration `mapstructure:"idempotency_ttl"`
}

// KafkaConfig is optional; an empty Broker disables event publishing.
type KafkaConfig struct {
	Broker     string `mapstructure:"broker"`
	Topic      string `mapstructure:"topic"`
	GroupID    string `mapstructure:"group_id"`
	MaxRetries int    `mapstructure:"max_retries"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Load reads .env (if present) and the process environment into a Config.
// Keys map to env vars by upper-casing and replacing dots with underscores,
// e.g. notification.emailjs.service_id -> NOTIFICATION_EMAILJS_SERVICE_ID.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "3000")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.format", "console")

	v.SetDefault("leave.sick_days", 10)
	v.SetDefault("leave.casual_days", 10)
	v.SetDefault("leave.session_ttl", 30*time.Minute)
	v.SetDefault("leave.sweep_interval", time.Minute)

	v.SetDefault("notification.driver", NotifierLog)
	v.SetDefault("notification.timeout", 15*time.Second)
	v.SetDefault("notification.emailjs.endpoint", "https://api.emailjs.com/api/v1.0/email/send")
	v.SetDefault("notification.emailjs.service_id", "")
	v.SetDefault("notification.emailjs.template_id", "")
	v.SetDefault("notification.emailjs.public_key", "")
	v.SetDefault("notification.emailjs.access_token", "")
	v.SetDefault("notification.sns.topic_arn", "")
	v.SetDefault("notification.sns.region", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.max_retries", 5)
	v.SetDefault("redis.idempotency_ttl", 24*time.Hour)

	v.SetDefault("kafka.broker", "")
	v.SetDefault("kafka.topic", "hr.leave.requested.v1")
	v.SetDefault("kafka.group_id", "go-leave-audit")
	v.SetDefault("kafka.max_retries", 5)

	v.SetDefault("rate_limit.requests_per_second", 5)
	v.SetDefault("rate_limit.burst", 10)
}

// bindEnvVars keeps the short env names used by the deployment scripts.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("server.port", "SERVER_PORT", "PORT")
	_ = v.BindEnv("redis.addr", "REDIS_ADDR")
	_ = v.BindEnv("kafka.broker", "KAFKA_BROKER")
	_ = v.BindEnv("logger.level", "LOGGER_LEVEL", "LOG_LEVEL")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Leave.SickDays < 0 || c.Leave.CasualDays < 0 {
		return fmt.Errorf("leave balances must not be negative")
	}
	if c.Leave.SessionTTL <= 0 {
		return fmt.Errorf("leave.session_ttl must be positive")
	}

	switch c.Notification.Driver {
	case NotifierLog:
	case NotifierEmailJS:
		e := c.Notification.EmailJS
		if e.Endpoint == "" {
			return fmt.Errorf("notification.emailjs.endpoint is required")
		}
		if e.ServiceID == "" || e.TemplateID == "" || e.PublicKey == "" {
			return fmt.Errorf("notification.emailjs service_id, template_id and public_key are required")
		}
	case NotifierSNS:
		if c.Notification.SNS.TopicARN == "" {
			return fmt.Errorf("notification.sns.topic_arn is required")
		}
	default:
		return fmt.Errorf("unknown notification.driver %q", c.Notification.Driver)
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit values must be positive")
	}

	return nil
}
