package gate

import (
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
)

var (
	cfg  Config
	once sync.Once
)

// Config is the host-supplied configuration surface. When a Config is built
// programmatically, zero Digits, Period and SessionDuration fall back to the
// documented defaults in New; zero is meaningful for Grace (exact single-step
// matching) and FailureDelay (no delay) and is kept as-is. LoadConfig applies
// the envDefault values below, so env-driven hosts get 90s grace and a 1s
// failure delay unless overridden.
type Config struct {
	// SecretPath locates the persisted secret record.
	SecretPath string `env:"TOTPGATE_SECRET_PATH,required"`
	// Digits is the candidate code length (6-8).
	Digits int `env:"TOTPGATE_DIGITS" envDefault:"6"`
	// Period is the TOTP time step.
	Period time.Duration `env:"TOTPGATE_PERIOD" envDefault:"30s"`
	// Grace is the accepted clock drift before and after the current step.
	// Zero or negative means exact single-step matching.
	Grace time.Duration `env:"TOTPGATE_GRACE" envDefault:"90s"`
	// SessionDuration is the fixed access grant attached to every successful
	// authentication. Defaults to one week.
	SessionDuration time.Duration `env:"TOTPGATE_SESSION_DURATION" envDefault:"168h"`
	// FailureDelay is the wall-clock floor applied to every failed attempt so
	// timing does not reveal which step denied the caller. Zero disables the
	// delay (tests only).
	FailureDelay time.Duration `env:"TOTPGATE_FAILURE_DELAY" envDefault:"1s"`
}

// LoadConfig loads the gate configuration from the environment once per
// process. Values are cached; subsequent calls return the same Config.
func LoadConfig() (Config, error) {
	var err error
	once.Do(func() {
		err = env.Parse(&cfg)
	})
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
