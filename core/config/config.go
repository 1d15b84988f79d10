// Package config loads and validates the shell's configuration.
package config

import (
	_ "embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file name Load looks for.
const ConfigurationName = "config.yaml"

// Configuration is the user-tunable surface of the shell.
type Configuration struct {
	configFs afero.Fs

	// Motd is printed once when the shell starts, when nonempty.
	Motd string `json:"motd"`

	// Prompt is the template printed before each read. \u, \h and \w
	// expand to the user, the hostname and the working directory.
	Prompt string `json:"prompt" validate:"required"`

	// Color controls prompt coloring.
	Color string `json:"color" validate:"oneof=always auto never"`

	// LogFile is where newline-delimited JSON session events go. Empty
	// disables the session log.
	LogFile string `json:"log_file"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// OpenLog opens the session log in an append only state.
func (c *Configuration) OpenLog() (afero.File, error) {
	return c.fs().OpenFile(c.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// Default returns the embedded default configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
