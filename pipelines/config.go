package pipelines

import (
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/ratelimit"
)

type Config struct {
	// DoctorLookupsPerSecond limits the doctor lookups issued while enriching
	// appointment counts. Zero disables the limit.
	DoctorLookupsPerSecond uint `envconfig:"DOCTOR_LOOKUPS_PER_SECOND" default:"0"`
}

func NewConfig() (Config, error) {
	config := Config{}
	err := envconfig.Process("", &config)
	return config, err
}

func NewRateLimiter(config Config) ratelimit.Limiter {
	if config.DoctorLookupsPerSecond == 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(int(config.DoctorLookupsPerSecond))
}
