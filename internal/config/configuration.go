package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Storage StorageConfig `yaml:"storage"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	CleanConfig   CleanConfig   `yaml:"clean"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule string `yaml:"schedule"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwtSecret"`
}

type StorageConfig struct {
	UploadURLExpiryMinutes int `yaml:"uploadUrlExpiryMinutes"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	if config.Storage.UploadURLExpiryMinutes == 0 {
		config.Storage.UploadURLExpiryMinutes = 15
	}
	return &config, nil
}
