package config

import (
	"os"
	"sync"

	"vznx/logutils"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Postgres struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		DBName   string `yaml:"dbname"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		SSLMode  string `yaml:"sslmode"`
		TimeZone string `yaml:"TimeZone"`
	} `yaml:"postgres"`
	Auth struct {
		AccessTokenSecret      string `yaml:"accessTokenSecret"`
		RefreshTokenSecret     string `yaml:"refreshTokenSecret"`
		AccessTokenExpiryHour  int    `yaml:"accessTokenExpiryHour"`
		RefreshTokenExpiryHour int    `yaml:"refreshTokenExpiryHour"`
	} `yaml:"auth"`
}

var (
	once   sync.Once
	config *Config
)

func GetConfig() *Config {
	once.Do(func() {
		config = initConfig()
	})
	return config
}

// initConfig reads the configuration file named by VZNX_CONFIG
// (./etc/config.yaml when unset). A missing file is not fatal: the
// defaults plus environment overrides are enough for local runs and tests.
func initConfig() *Config {
	// .env first, same as the server has always done
	_ = godotenv.Load()

	config := defaultConfig()
	configPath := os.Getenv("VZNX_CONFIG")
	if configPath == "" {
		configPath = "./etc/config.yaml"
	}

	err := readConfig(configPath, config)
	if err != nil {
		if os.IsNotExist(err) {
			logutils.Log.Warnf("config file %s not found, using defaults", configPath)
		} else {
			logutils.Log.Error("init config", err)
			panic(err)
		}
	}
	applyEnvOverrides(config)
	return config
}

func defaultConfig() *Config {
	config := &Config{}
	config.Server.Port = "5000"
	config.Auth.AccessTokenSecret = "vznx-dev-access-secret"
	config.Auth.RefreshTokenSecret = "vznx-dev-refresh-secret"
	config.Auth.AccessTokenExpiryHour = 1
	config.Auth.RefreshTokenExpiryHour = 168
	return config
}

func applyEnvOverrides(config *Config) {
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port = port
	}
	if secret := os.Getenv("VZNX_ACCESS_TOKEN_SECRET"); secret != "" {
		config.Auth.AccessTokenSecret = secret
	}
	if secret := os.Getenv("VZNX_REFRESH_TOKEN_SECRET"); secret != "" {
		config.Auth.RefreshTokenSecret = secret
	}
}

func readConfig(filePath string, config *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return err
	}
	return nil
}
