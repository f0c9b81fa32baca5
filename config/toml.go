package config

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/spf13/viper"
)

var configTemplate *template.Template

func init() {
	var err error
	tmpl := template.New("configFileTemplate")
	if configTemplate, err = tmpl.Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

// WriteConfigFile renders config in the commented TOML format and
// writes it to configFilePath.
func WriteConfigFile(configFilePath string, config *TopologyConfig) error {
	var buffer bytes.Buffer
	if err := configTemplate.Execute(&buffer, config); err != nil {
		return err
	}
	return os.WriteFile(configFilePath, buffer.Bytes(), 0600)
}

// LoadConfigFile reads a TopologyConfig from the TOML file at
// configFilePath. Missing keys keep their default values.
func LoadConfigFile(configFilePath string) (*TopologyConfig, error) {
	v := viper.New()
	v.SetConfigFile(configFilePath)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultTopologyConfig()
	if err := v.UnmarshalKey("topology", cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return cfg, nil
}

// Note: any changes to the TopologyConfig struct or its defaults must
// be reflected in this template.
const defaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

#######################################################
###         Topology Configuration Options          ###
#######################################################
[topology]

# Maximum number of peers retained in the vicinity view.
max_view_size = {{ .MaxViewSize }}

# Maximum number of peers recommended per outgoing gossip.
max_gossip_length = {{ .MaxGossipLength }}
`
