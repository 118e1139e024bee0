package main

import (
	"flag"
	"os"

	"seotda-server/internal/config"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var env = flag.Bool("env", false, "list the environment variables instead of printing a config file")

// prints a config file holding the defaults, suitable for SEOTDA_CONFIG_FILE
func main() {
	flag.Parse()

	cfg := config.DefaultConfig()
	if *env {
		if err := envconfig.Usage(config.EnvPrefix, &cfg); err != nil {
			logrus.WithError(err).Fatal("could not list environment variables")
		}

		return
	}

	if err := yaml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		logrus.WithError(err).Fatal("could not encode config")
	}
}
