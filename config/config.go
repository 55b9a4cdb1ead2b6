// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"

	"github.com/MORE-Vaults/vaults-relayer/config/relayer"
)

type Config struct {
	RelayerConfig relayer.RelayerConfig
	VaultConfigs  []map[string]interface{}
}

type RawConfig struct {
	RelayerConfig relayer.RawRelayerConfig `mapstructure:"relayer" json:"relayer"`
	VaultConfigs  []map[string]interface{} `mapstructure:"vaults" json:"vaults"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of RelayerConfig are expected to be defined as separate Env
// variables where Env variable name reflects properties position in
// structure. Each Env variable needs to be prefixed with MVR.
//
// For example, if you want to set Config.RelayerConfig.MaxRequestDelay this
// would translate to Env variable named MVR_RELAYER_MAXREQUESTDELAY.
func GetConfigFromENV(config *Config) (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return config, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetSharedConfigFromNetwork fetches shared configuration from URL and
// parses it.
func GetSharedConfigFromNetwork(url string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	resp, err := http.Get(url)
	if err != nil {
		return &Config{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Config{}, err
	}

	err = json.Unmarshal(body, &rawConfig)
	if err != nil {
		return &Config{}, err
	}

	config.VaultConfigs = rawConfig.VaultConfigs
	return config, err
}

func processRawConfig(rawConfig RawConfig, config *Config) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	relayerConfig, err := relayer.NewRelayerConfig(rawConfig.RelayerConfig)
	if err != nil {
		return config, err
	}

	vaultConfigs := make([]map[string]interface{}, 0)
	for i, vault := range rawConfig.VaultConfigs {
		if i < len(config.VaultConfigs) {
			err := mergo.Merge(&vault, config.VaultConfigs[i])
			if err != nil {
				return config, err
			}
		}

		if vault["type"] == "" || vault["type"] == nil {
			return config, fmt.Errorf("vault 'type' must be provided for every configured vault")
		}
		vaultConfigs = append(vaultConfigs, vault)
	}

	config.VaultConfigs = vaultConfigs
	config.RelayerConfig = relayerConfig
	return config, nil
}
