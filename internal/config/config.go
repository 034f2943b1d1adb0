package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr     string
	LedgerPath   string
	PostgresDSN  string // when set, the ledger lives in Postgres instead of the JSON file
	RedisAddr    string
	KafkaBrokers []string

	GeminiAPIKey     string
	SheetsWebhookURL string
	WhatsAppNumber   string
	OrderEmail       string

	AdminUser string
	AdminPass string

	ServiceName string
}

func Load() Config {
	return Config{
		HTTPAddr:         getenv("HTTP_ADDR", ":8081"),
		LedgerPath:       getenv("LEDGER_PATH", "chaunsa_orders.json"),
		PostgresDSN:      getenv("POSTGRES_DSN", ""),
		RedisAddr:        getenv("REDIS_ADDR", ""),
		KafkaBrokers:     splitCSV(getenv("KAFKA_BROKERS", "")),
		GeminiAPIKey:     getenv("GEMINI_API_KEY", ""),
		SheetsWebhookURL: getenv("SHEETS_WEBHOOK_URL", ""),
		WhatsAppNumber:   getenv("WHATSAPP_NUMBER", "923001234567"),
		OrderEmail:       getenv("ORDER_EMAIL", "cyberdraft67@gmail.com"),
		AdminUser:        getenv("ADMIN_USER", "admin"),
		AdminPass:        getenv("ADMIN_PASS", "mango123"),
		ServiceName:      getenv("SERVICE_NAME", "storefront"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
