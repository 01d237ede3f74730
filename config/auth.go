package config

import (
	"time"

	"notemark/utils"
)

type AuthConfig struct {
	JWTSecretKey      string
	AccessExpiration  time.Duration
	RefreshExpiration time.Duration
	Issuer            string
}

func LoadAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecretKey:      utils.GetEnvAsString("JWT_SECRET_KEY", ""),
		AccessExpiration:  time.Duration(utils.GetEnvAsInt("JWT_EXPIRATION_TIME", 3600)) * time.Second,
		RefreshExpiration: time.Duration(utils.GetEnvAsInt("REFRESH_TOKEN_EXPIRATION_TIME", 604800)) * time.Second,
		Issuer:            "notemark",
	}
}
