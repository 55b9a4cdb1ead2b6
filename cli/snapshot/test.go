// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package snapshot

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MORE-Vaults/vaults-relayer/topology"
)

var (
	testSnapshotCMD = &cobra.Command{
		Use:   "test",
		Short: "Test snapshot bucket",
		Long: "CLI tests does the configured bucket contain a snapshot that could be " +
			"decrypted with provided password and then parsed accordingly",
		RunE: testSnapshot,
	}
)

var (
	serviceAddress string
	accessKey      string
	secKey         string
	region         string
	bucket         string
	document       string
	hash           string
	decryptionKey  string
)

func init() {
	testSnapshotCMD.PersistentFlags().StringVar(&decryptionKey, "decryptionKey", "", "password to decrypt snapshot")
	_ = testSnapshotCMD.MarkFlagRequired("decryptionKey")
	testSnapshotCMD.PersistentFlags().StringVar(&serviceAddress, "serviceAddress", "", "address of the object storage service")
	_ = testSnapshotCMD.MarkFlagRequired("serviceAddress")
	testSnapshotCMD.PersistentFlags().StringVar(&accessKey, "accessKey", "", "object storage access key")
	testSnapshotCMD.PersistentFlags().StringVar(&secKey, "secKey", "", "object storage secret key")
	testSnapshotCMD.PersistentFlags().StringVar(&region, "region", "", "bucket region")
	testSnapshotCMD.PersistentFlags().StringVar(&bucket, "bucket", "", "bucket name")
	_ = testSnapshotCMD.MarkFlagRequired("bucket")
	testSnapshotCMD.PersistentFlags().StringVar(&document, "document", "", "snapshot document name")
	_ = testSnapshotCMD.MarkFlagRequired("document")
	testSnapshotCMD.PersistentFlags().StringVar(&hash, "hash", "", "expected content hash of the spoke set")
}

func testSnapshot(cmd *cobra.Command, args []string) error {
	config := topology.SnapshotConfiguration{
		ServiceAddress: serviceAddress,
		AccessKey:      accessKey,
		SecKey:         secKey,
		BucketRegion:   region,
		BucketName:     bucket,
		DocumentName:   document,
		EncryptionKey:  decryptionKey,
	}
	provider, err := topology.NewSnapshotProvider(config)
	if err != nil {
		return err
	}
	snapshot, err := provider.SpokeSetSnapshot(hash)
	if err != nil {
		return err
	}

	fmt.Printf("Everything is fine, your snapshot is \n")
	fmt.Printf("%+v\n", snapshot)
	return nil
}
