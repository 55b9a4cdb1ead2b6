// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName     = "config"
	ConfigURLFlagName  = "config-url"
	BlockstoreFlagName = "blockstore"
	FreshStartFlagName = "fresh"
)

// BindFlags binds the persistent runtime flags shared by every command.
func BindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(ConfigFlagName, ".", "path to configuration file or 'env' to load from environment")
	_ = viper.BindPFlag(ConfigFlagName, cmd.PersistentFlags().Lookup(ConfigFlagName))

	cmd.PersistentFlags().String(ConfigURLFlagName, "", "url of the shared configuration document")
	_ = viper.BindPFlag(ConfigURLFlagName, cmd.PersistentFlags().Lookup(ConfigURLFlagName))

	cmd.PersistentFlags().String(BlockstoreFlagName, "./lvldbdata", "path to the request ledger database")
	_ = viper.BindPFlag(BlockstoreFlagName, cmd.PersistentFlags().Lookup(BlockstoreFlagName))

	cmd.PersistentFlags().Bool(FreshStartFlagName, false, "ignore the cached spoke-set snapshot and refetch it")
	_ = viper.BindPFlag(FreshStartFlagName, cmd.PersistentFlags().Lookup(FreshStartFlagName))
}
