package config

import "notemark/utils"

type ServerConfig struct {
	Port    string
	GinMode string
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    utils.GetEnvAsString("PORT", "8080"),
		GinMode: utils.GetEnvAsString("GIN_MODE", "release"),
	}
}
