// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MORE-Vaults/vaults-relayer/cli/snapshot"
	"github.com/MORE-Vaults/vaults-relayer/flags"
)

var (
	rootCMD = &cobra.Command{
		Use: "",
	}
)

func init() {
	flags.BindFlags(rootCMD)
	rootCMD.PersistentFlags().String("name", "", "relayer name")
	_ = viper.BindPFlag("name", rootCMD.PersistentFlags().Lookup("name"))
}

func Execute() {
	rootCMD.AddCommand(runCMD, snapshot.SnapshotCLI)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
