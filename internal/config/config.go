package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Auth     AuthConfig
	Payment  PaymentConfig
	Contact  ContactConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type PaymentConfig struct {
	UPIID        string
	MerchantName string
	QRServiceURL string
}

type ContactConfig struct {
	WhatsAppNumber string
	SupportPhone   string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "marblemanager")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "marblemanager")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "dev-secret-change-me")
	viper.SetDefault("JWT_TOKEN_TTL", "24h")
	viper.SetDefault("UPI_ID", "samyak979-1@oksbi")
	viper.SetDefault("UPI_MERCHANT_NAME", "Marble Manager")
	viper.SetDefault("QR_SERVICE_URL", "https://api.qrserver.com/v1/create-qr-code/")
	viper.SetDefault("WHATSAPP_NUMBER", "919999999999")
	viper.SetDefault("SUPPORT_PHONE", "919999999999")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	tokenTTL, err := time.ParseDuration(viper.GetString("JWT_TOKEN_TTL"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
			TokenTTL:  tokenTTL,
		},
		Payment: PaymentConfig{
			UPIID:        viper.GetString("UPI_ID"),
			MerchantName: viper.GetString("UPI_MERCHANT_NAME"),
			QRServiceURL: viper.GetString("QR_SERVICE_URL"),
		},
		Contact: ContactConfig{
			WhatsAppNumber: viper.GetString("WHATSAPP_NUMBER"),
			SupportPhone:   viper.GetString("SUPPORT_PHONE"),
		},
	}

	return cfg, nil
}
