// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MORE-Vaults/vaults-relayer/topology"
)

var (
	encryptSnapshotCMD = &cobra.Command{
		Use:   "encrypt",
		Short: "encrypt provided spoke-set snapshot with AES",
		Long:  "Algorithm used is AES CTR. CT returned is in hex.",
		RunE:  encryptSnapshot,
	}
)

var (
	path          string
	encryptionKey string
)

func init() {
	encryptSnapshotCMD.PersistentFlags().StringVar(&path, "path", "", "path to json file with spoke-set snapshot")
	_ = encryptSnapshotCMD.MarkFlagRequired("path")
	encryptSnapshotCMD.PersistentFlags().StringVar(&encryptionKey, "encryptionKey", "", "password to encrypt snapshot")
	_ = encryptSnapshotCMD.MarkFlagRequired("encryptionKey")
}

func encryptSnapshot(cmd *cobra.Command, args []string) error {
	aesEncryption, err := topology.NewAESEncryption([]byte(encryptionKey))
	if err != nil {
		return err
	}
	byteValue, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	rawSnapshot := &topology.RawSnapshot{}
	err = json.Unmarshal(byteValue, rawSnapshot)
	if err != nil {
		return fmt.Errorf("snapshot was wrong formed %s", err.Error())
	}
	snapshot, err := topology.ProcessRawSnapshot(rawSnapshot)
	if err != nil {
		return err
	}
	fmt.Printf("%+v\n", snapshot)

	ct := aesEncryption.Encrypt(byteValue)
	fmt.Printf("Encrypted snapshot is: %s \n", ct)

	h := sha256.New()
	h.Write([]byte(ct))
	eh := hex.EncodeToString(h.Sum(nil))
	fmt.Printf("Hash of the snapshot document %s\n", eh)

	contentHash, err := snapshot.Hash()
	if err != nil {
		return err
	}
	fmt.Printf("Content hash of the spoke set %s\n", contentHash)
	return nil
}
