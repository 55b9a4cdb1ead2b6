// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package snapshot

import "github.com/spf13/cobra"

var SnapshotCLI = &cobra.Command{
	Use:   "snapshot",
	Short: "utility commands that help to encrypt and test spoke-set snapshots",
}

func init() {
	SnapshotCLI.AddCommand(encryptSnapshotCMD)
	SnapshotCLI.AddCommand(testSnapshotCMD)
}
