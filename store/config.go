package store

import "github.com/kelseyhightower/envconfig"

type Config struct {
	URL             string `envconfig:"MONGO_URL" default:"mongodb://localhost:27017"`
	DatabaseName    string `envconfig:"MONGO_DB_NAME" default:"meditrack"`
	ConnectAttempts uint   `envconfig:"MONGO_CONNECT_ATTEMPTS" default:"3"`
}

func NewConfig() (Config, error) {
	config := Config{}
	err := envconfig.Process("", &config)
	return config, err
}
