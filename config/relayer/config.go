// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package relayer

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"github.com/MORE-Vaults/vaults-relayer/topology"
)

type RelayerConfig struct {
	LogLevel   zerolog.Level
	LogFile    string
	HealthPort string
	Env        string
	Id         string

	// AccountingManager is the privileged identity permitted to deliver
	// accounting updates and trigger request execution.
	AccountingManager common.Address
	// MaxRequestDelay is the elapsed time after which an unfinalized
	// request counts as stuck and becomes refundable.
	MaxRequestDelay time.Duration
	// FinalizationDelay is the minimum time after a spoke vault's
	// deployment before it may request hub linkage.
	FinalizationDelay time.Duration
	// MaxSpokesPerCall bounds the spoke-value aggregation loop.
	MaxSpokesPerCall int
	// SweepInterval is how often the stuck-request sweep runs.
	SweepInterval time.Duration

	SnapshotConfiguration topology.SnapshotConfiguration
}

type RawRelayerConfig struct {
	LogLevel   string `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile    string `mapstructure:"LogFile" json:"logFile" default:"out.log"`
	HealthPort string `mapstructure:"HealthPort" json:"healthPort" default:"9001"`
	Env        string `mapstructure:"Env" json:"env"`
	Id         string `mapstructure:"Id" json:"id"`

	AccountingManager string `mapstructure:"AccountingManager" json:"accountingManager"`
	MaxRequestDelay   string `mapstructure:"MaxRequestDelay" json:"maxRequestDelay" default:"24h"`
	FinalizationDelay string `mapstructure:"FinalizationDelay" json:"finalizationDelay" default:"1h"`
	MaxSpokesPerCall  int    `mapstructure:"MaxSpokesPerCall" json:"maxSpokesPerCall" default:"32"`
	SweepInterval     string `mapstructure:"SweepInterval" json:"sweepInterval" default:"10m"`

	SnapshotConfiguration RawSnapshotConfig `mapstructure:"SnapshotConfiguration" json:"snapshotConfiguration"`
}

type RawSnapshotConfig struct {
	ServiceAddress string `mapstructure:"ServiceAddress" json:"serviceAddress"`
	AccessKey      string `mapstructure:"AccessKey" json:"accessKey"`
	SecKey         string `mapstructure:"SecKey" json:"secKey"`
	BucketRegion   string `mapstructure:"BucketRegion" json:"bucketRegion"`
	BucketName     string `mapstructure:"BucketName" json:"bucketName"`
	DocumentName   string `mapstructure:"DocumentName" json:"documentName"`
	EncryptionKey  string `mapstructure:"EncryptionKey" json:"encryptionKey"`
	Path           string `mapstructure:"Path" json:"path" default:"./snapshot.json"`
}

func (c *RawRelayerConfig) Validate() error {
	if c.AccountingManager != "" && !common.IsHexAddress(c.AccountingManager) {
		return fmt.Errorf("invalid accounting manager address: %s", c.AccountingManager)
	}
	return nil
}

// NewRelayerConfig parses RawRelayerConfig into RelayerConfig
func NewRelayerConfig(rawConfig RawRelayerConfig) (RelayerConfig, error) {
	config := RelayerConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel

	config.LogFile = rawConfig.LogFile
	config.HealthPort = rawConfig.HealthPort
	config.Env = rawConfig.Env
	config.Id = rawConfig.Id
	config.AccountingManager = common.HexToAddress(rawConfig.AccountingManager)
	config.MaxSpokesPerCall = rawConfig.MaxSpokesPerCall

	maxRequestDelay, err := time.ParseDuration(rawConfig.MaxRequestDelay)
	if err != nil {
		return RelayerConfig{}, fmt.Errorf("unable to parse max request delay: %w", err)
	}
	config.MaxRequestDelay = maxRequestDelay

	finalizationDelay, err := time.ParseDuration(rawConfig.FinalizationDelay)
	if err != nil {
		return RelayerConfig{}, fmt.Errorf("unable to parse finalization delay: %w", err)
	}
	config.FinalizationDelay = finalizationDelay

	sweepInterval, err := time.ParseDuration(rawConfig.SweepInterval)
	if err != nil {
		return RelayerConfig{}, fmt.Errorf("unable to parse sweep interval: %w", err)
	}
	config.SweepInterval = sweepInterval

	config.SnapshotConfiguration = topology.SnapshotConfiguration{
		ServiceAddress: rawConfig.SnapshotConfiguration.ServiceAddress,
		AccessKey:      rawConfig.SnapshotConfiguration.AccessKey,
		SecKey:         rawConfig.SnapshotConfiguration.SecKey,
		BucketRegion:   rawConfig.SnapshotConfiguration.BucketRegion,
		BucketName:     rawConfig.SnapshotConfiguration.BucketName,
		DocumentName:   rawConfig.SnapshotConfiguration.DocumentName,
		EncryptionKey:  rawConfig.SnapshotConfiguration.EncryptionKey,
		Path:           rawConfig.SnapshotConfiguration.Path,
	}

	return config, nil
}
