package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Line   LineConfig
	Sheets SheetsConfig
	Server ServerConfig
	DB     DBConfig
}

type LineConfig struct {
	ChannelSecret      string
	ChannelAccessToken string
	NotifyToken        string // LINE Notify token for staff notifications
}

type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsFile string // service-account JSON key
}

type ServerConfig struct {
	Port int
}

type DBConfig struct {
	URL string // optional; enables the Postgres cart store when set
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("PORT", "3000"))

	return &Config{
		Line: LineConfig{
			ChannelSecret:      getEnv("CHANNEL_SECRET", ""),
			ChannelAccessToken: getEnv("CHANNEL_ACCESS_TOKEN", ""),
			NotifyToken:        getEnv("LINE_NOTIFY_TOKEN", ""),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:   getEnv("SPREADSHEET_ID", ""),
			CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "./service-account.json"),
		},
		Server: ServerConfig{
			Port: port,
		},
		DB: DBConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
