package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cloudlift-io/cloudlift-client/pkg/cloudlift"
	"github.com/cloudlift-io/cloudlift-client/pkg/liftclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrNotLoggedIn = errors.New("no API token configured, run 'lift login' or pass --token")
)

// createClient builds an SDK client from the active CLI configuration.
func createClient() (cloudlift.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	config := &cloudlift.Config{
		Token:   token,
		BaseURL: viper.GetString("api"),
		Debug:   viper.GetBool("debug"),
	}

	client, err := liftclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// renderStructured writes v as indented JSON or YAML to stdout and reports
// whether the active output format was one of the two.
func renderStructured(v interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(v)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(v)
	default:
		return false, nil
	}
}
