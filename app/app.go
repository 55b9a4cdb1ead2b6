// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"

	"github.com/MORE-Vaults/vaults-relayer/accounting"
	"github.com/MORE-Vaults/vaults-relayer/chains/evm"
	"github.com/MORE-Vaults/vaults-relayer/config"
	"github.com/MORE-Vaults/vaults-relayer/config/vault"
	"github.com/MORE-Vaults/vaults-relayer/flags"
	"github.com/MORE-Vaults/vaults-relayer/health"
	"github.com/MORE-Vaults/vaults-relayer/jobs"
	"github.com/MORE-Vaults/vaults-relayer/logger"
	"github.com/MORE-Vaults/vaults-relayer/lvldb"
	"github.com/MORE-Vaults/vaults-relayer/metrics"
	"github.com/MORE-Vaults/vaults-relayer/relayer/requests"
	"github.com/MORE-Vaults/vaults-relayer/store"
	"github.com/MORE-Vaults/vaults-relayer/topology"
)

type hubSetup struct {
	config     *evm.EVMVaultConfig
	vault      *evm.VaultContract
	transport  *evm.TransportContract
	oracle     *evm.OracleContract
	transferer *evm.NativeTransferer
}

func Run() error {
	var err error

	configFlag := viper.GetString(flags.ConfigFlagName)
	configURL := viper.GetString(flags.ConfigURLFlagName)

	configuration := &config.Config{}
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL, configuration)
		panicOnError(err)
	}

	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}

	logFile, err := os.OpenFile(configuration.RelayerConfig.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	panicOnError(err)
	defer logFile.Close()
	logger.ConfigureLogger(configuration.RelayerConfig.LogLevel, io.MultiWriter(os.Stdout, logFile))

	log.Info().Msg("Successfully loaded configuration")

	go health.StartHealthEndpoint(configuration.RelayerConfig.HealthPort)

	// waits until an old instance releases the database file
	var db *lvldb.LVLDB
	for {
		db, err = lvldb.NewLvlDB(viper.GetString(flags.BlockstoreFlagName))
		if err != nil {
			log.Error().Err(err).Msg("Unable to connect to ledger database file, retry in 10 seconds")
			time.Sleep(10 * time.Second)
		} else {
			log.Info().Msg("Successfully connected to ledger database file")
			break
		}
	}
	defer db.Close()

	requestStore := store.NewRequestStore(db)
	registryStore := store.NewRegistryStore(db)
	accountingStore := store.NewAccountingStore(db)

	snapshot := loadSnapshot(configuration.RelayerConfig.SnapshotConfiguration)
	trust := topology.NewStaticPeerTrust(nil)
	if snapshot != nil {
		for _, spoke := range snapshot.Spokes {
			trust.AddPeer(spoke)
		}
	}

	vaultSet := evm.NewVaultSet()
	hubs := make([]hubSetup, 0)
	for _, vaultConfig := range configuration.VaultConfigs {
		cfg, err := evm.NewEVMVaultConfig(vaultConfig)
		panicOnError(err)

		client, err := evm.NewEVMClient(cfg.Endpoint, cfg.Key)
		panicOnError(err)

		vaultContract := evm.NewVaultContract(client, cfg.VaultConfig.Address, cfg.VaultConfig.GasLimit)
		vaultSet.Add(vaultContract)

		log.Info().
			Str("vault", cfg.VaultConfig.Address.Hex()).
			Str("type", cfg.VaultConfig.Type).
			Uint32("eid", cfg.VaultConfig.Eid).
			Msg("Registered vault")

		if cfg.VaultConfig.Type != vault.HubVaultType {
			continue
		}
		hubs = append(hubs, hubSetup{
			config:     cfg,
			vault:      vaultContract,
			transport:  evm.NewTransportContract(client, cfg.Transport),
			oracle:     evm.NewOracleContract(client, cfg.Oracle),
			transferer: evm.NewNativeTransferer(client),
		})
	}
	if len(hubs) == 0 {
		panic(fmt.Errorf("no hub vault configured"))
	}

	registry := topology.NewRegistry(
		registryStore,
		vaultSet,
		trust,
		hubs[0].transport,
		configuration.RelayerConfig.FinalizationDelay,
	)
	if snapshot != nil {
		panicOnError(registry.SeedFromSnapshot(snapshot))
	}

	meter := otel.GetMeterProvider().Meter("vaults-relayer")
	relayerMetrics, err := metrics.NewRelayerMetrics(
		meter,
		configuration.RelayerConfig.Env,
		configuration.RelayerConfig.Id,
	)
	panicOnError(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ledgers := make([]*requests.Ledger, 0, len(hubs))
	for _, hub := range hubs {
		aggregator := accounting.NewAggregator(
			registry,
			hub.oracle,
			hub.oracle,
			accountingStore,
			vaultSet,
			requestStore,
			configuration.RelayerConfig.MaxSpokesPerCall,
		)
		ledger := requests.NewLedger(
			hub.vault,
			hub.transport,
			requestStore,
			hub.oracle,
			hub.transferer,
			aggregator,
			registry,
			configuration.RelayerConfig.AccountingManager,
			hub.config.VaultConfig.Composers,
			configuration.RelayerConfig.MaxRequestDelay,
			relayerMetrics,
		)
		ledgers = append(ledgers, ledger)
	}

	go jobs.StartStuckRequestSweep(ctx, ledgers, configuration.RelayerConfig.SweepInterval)

	log.Info().Msgf("Started relayer with %d hub vaults", len(hubs))

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

// loadSnapshot reads the cached spoke-set snapshot, falling back to the
// shared snapshot bucket when the cache is missing or a fresh start was
// requested. Running without a snapshot is allowed; the registry then
// only learns spokes from inbound messages.
func loadSnapshot(cfg topology.SnapshotConfiguration) *topology.SpokeSetSnapshot {
	snapshotStore := topology.NewSnapshotStore(cfg.Path)

	if !viper.GetBool(flags.FreshStartFlagName) {
		snapshot, err := snapshotStore.Snapshot()
		if err == nil {
			log.Info().Msg("Loaded spoke-set snapshot from cache")
			return snapshot
		}
	}

	if cfg.ServiceAddress == "" {
		log.Warn().Msg("No snapshot service configured, starting with empty topology")
		return nil
	}

	provider, err := topology.NewSnapshotProvider(cfg)
	panicOnError(err)
	snapshot, err := provider.SpokeSetSnapshot("")
	panicOnError(err)
	panicOnError(snapshotStore.StoreSnapshot(snapshot))

	log.Info().Msg("Loaded spoke-set snapshot from provider")
	return snapshot
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
