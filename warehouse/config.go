package warehouse

import (
	"fmt"
	"net/url"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Host            string `envconfig:"REDSHIFT_HOST" default:"localhost"`
	Port            int    `envconfig:"REDSHIFT_PORT" default:"5439"`
	Database        string `envconfig:"REDSHIFT_DB" default:"meditrack"`
	User            string `envconfig:"REDSHIFT_USER"`
	Password        string `envconfig:"REDSHIFT_PASSWORD"`
	SSLMode         string `envconfig:"REDSHIFT_SSL_MODE" default:"require"`
	ConnectAttempts uint   `envconfig:"REDSHIFT_CONNECT_ATTEMPTS" default:"3"`
}

func NewConfig() (Config, error) {
	config := Config{}
	err := envconfig.Process("", &config)
	return config, err
}

// DSN returns the connection url in the format expected by lib/pq
func (c Config) DSN() string {
	dsn := url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.Database,
	}
	if c.User != "" {
		dsn.User = url.UserPassword(c.User, c.Password)
	}
	query := url.Values{}
	if c.SSLMode != "" {
		query.Set("sslmode", c.SSLMode)
	}
	dsn.RawQuery = query.Encode()
	return dsn.String()
}
