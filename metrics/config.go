package metrics

import "github.com/kelseyhightower/envconfig"

type Config struct {
	// PushgatewayURL is the address of the prometheus pushgateway. Metrics are not pushed if it's empty.
	PushgatewayURL string `envconfig:"PROMETHEUS_PUSHGATEWAY_URL"`
	Job            string `envconfig:"PROMETHEUS_JOB" default:"meditrack_aggregator"`
}

func NewConfig() (Config, error) {
	config := Config{}
	err := envconfig.Process("", &config)
	return config, err
}
