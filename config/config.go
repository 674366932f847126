package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
	} `envconfig:"APP"`

	Store struct {
		Dir              string `envconfig:"DIR"`
		HotelsFile       string `envconfig:"HOTELS_FILE"`
		CustomersFile    string `envconfig:"CUSTOMERS_FILE"`
		ReservationsFile string `envconfig:"RESERVATIONS_FILE"`
		FileMode         uint32 `envconfig:"FILE_MODE"`
	} `envconfig:"STORE"`

	External struct {
		Otel struct {
			Exporter string `envconfig:"EXPORTER"`
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

const (
	defaultAppName          = "hotelier"
	defaultStoreDir         = "."
	defaultHotelsFile       = "hotels.json"
	defaultCustomersFile    = "customers.json"
	defaultReservationsFile = "reservations.json"
	defaultFileMode         = 0o644
)

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		conf.ApplyDefaults()

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

// ApplyDefaults fills every unset store and app setting.
func (c *Config) ApplyDefaults() {
	if c.App.Name == "" {
		c.App.Name = defaultAppName
	}

	if c.Store.Dir == "" {
		c.Store.Dir = defaultStoreDir
	}

	if c.Store.HotelsFile == "" {
		c.Store.HotelsFile = defaultHotelsFile
	}

	if c.Store.CustomersFile == "" {
		c.Store.CustomersFile = defaultCustomersFile
	}

	if c.Store.ReservationsFile == "" {
		c.Store.ReservationsFile = defaultReservationsFile
	}

	if c.Store.FileMode == 0 {
		c.Store.FileMode = defaultFileMode
	}
}
