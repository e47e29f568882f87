package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Host         string   `koanf:"host"`
	DefaultColor string   `koanf:"defaultcolor"`
	Frontend     Frontend `koanf:"frontend"`
	Storage      Storage  `koanf:"storage"`
	Database     Database `koanf:"db"`
}

type Frontend struct {
	Enabled bool `koanf:"enabled"`
}

// Storage selects where the event collection snapshot lives.
// Backend "memory" keeps it process-local; "postgres" writes it to the
// widget_storage table under Key.
type Storage struct {
	Backend string `koanf:"backend"`
	Key     string `koanf:"key"`
}

type Database struct {
	Host   string `koanf:"host"`
	Port   int    `koanf:"port"`
	User   string `koanf:"user"`
	Pass   string `koanf:"pass"`
	Name   string `koanf:"name"`
	Schema string `koanf:"schema"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Host:         "http://localhost:3000",
		DefaultColor: "#4F46E5",
		Frontend: Frontend{
			Enabled: true,
		},
		Storage: Storage{
			Backend: "memory",
			Key:     "gridcal.events",
		},
		Database: Database{
			Host:   "localhost",
			Port:   5432,
			User:   "gridcal",
			Pass:   "",
			Name:   "gridcal",
			Schema: "gridcal",
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "GRIDCAL_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "GRIDCAL_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
