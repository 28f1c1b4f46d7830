package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultShippingFlatRate = 50

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type TracingConfig struct {
	CollectorHost string
}

type Config struct {
	ServicePort      string
	MetricsPort      string
	Environment      string
	KVRestAPIURL     string
	KVRestAPIToken   string
	AdminEmail       string
	AdminPassword    string
	AdminJWTSecret   string
	ShippingFlatRate float64
	OrderWebhookURL  string
	SMTPConfig       SMTPConfig
	TracingConfig    TracingConfig
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	smtpPort, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))

	shippingFlatRate := float64(defaultShippingFlatRate)
	if raw := os.Getenv("SHIPPING_FLAT_RATE"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed >= 0 {
			shippingFlatRate = parsed
		}
	}

	conf := Config{
		ServicePort:      os.Getenv("SERVICE_PORT"),
		MetricsPort:      os.Getenv("METRICS_PORT"),
		Environment:      os.Getenv("ENVIRONMENT"),
		KVRestAPIURL:     os.Getenv("KV_REST_API_URL"),
		KVRestAPIToken:   os.Getenv("KV_REST_API_TOKEN"),
		AdminEmail:       os.Getenv("ADMIN_EMAIL"),
		AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		AdminJWTSecret:   os.Getenv("ADMIN_JWT_SECRET"),
		ShippingFlatRate: shippingFlatRate,
		OrderWebhookURL:  os.Getenv("ORDER_WEBHOOK_URL"),
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     smtpPort,
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	return &conf
}
