// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package topology

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/mitchellh/hashstructure/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// SpokeSetSnapshot is the canonical document describing a hub's full
// spoke set, used to seed the registry and to push bootstrap messages.
type SpokeSetSnapshot struct {
	Hub    common.Address
	Spokes []SpokeKey
}

func (s SpokeSetSnapshot) Hash() (string, error) {
	hash, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(hash, 10), nil
}

type SnapshotProvider interface {
	SpokeSetSnapshot(hash string) (*SpokeSetSnapshot, error)
}

type SnapshotConfiguration struct {
	ServiceAddress string
	AccessKey      string
	SecKey         string
	BucketRegion   string
	BucketName     string
	DocumentName   string
	EncryptionKey  string
	Path           string
}

func NewSnapshotProvider(config SnapshotConfiguration) (SnapshotProvider, error) {
	client, err := minio.New(config.ServiceAddress, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecKey, ""),
		Secure: true,
		Region: config.BucketRegion,
	})
	if err != nil {
		return nil, err
	}

	decryption, err := NewAESEncryption([]byte(config.EncryptionKey))
	if err != nil {
		return nil, err
	}

	return &snapshotProvider{
		client:       *client,
		decryption:   decryption,
		documentName: config.DocumentName,
		bucketName:   config.BucketName,
	}, nil
}

// RawSpoke and RawSnapshot are the on-the-wire form of the snapshot
// document before validation.
type RawSpoke struct {
	Eid   string `mapstructure:"Eid" json:"eid"`
	Vault string `mapstructure:"Vault" json:"vault"`
}

type RawSnapshot struct {
	Hub    string     `mapstructure:"Hub" json:"hub"`
	Spokes []RawSpoke `mapstructure:"Spokes" json:"spokes"`
}

type snapshotProvider struct {
	client       minio.Client
	decryption   *AESEncryption
	documentName string
	bucketName   string
}

// SpokeSetSnapshot fetches and decrypts the shared snapshot document. If
// hash is non-empty, the decoded snapshot's content hash must match it.
func (p *snapshotProvider) SpokeSetSnapshot(hash string) (*SpokeSetSnapshot, error) {
	ctx := context.Background()

	obj, err := p.client.GetObject(ctx, p.bucketName, p.documentName, minio.GetObjectOptions{})
	if err != nil {
		log.Err(err).Msg("unable to get snapshot object")
		return nil, err
	}

	stat, err := obj.Stat()
	if err != nil {
		log.Err(err).Msg("unable to get snapshot object information")
		return nil, err
	}

	data := make([]byte, stat.Size)
	_, err = obj.Read(data)
	if err != nil {
		log.Err(err).Msg("error on reading snapshot data")
	}

	decrypted := p.decryption.Decrypt(string(data))
	rawSnapshot := &RawSnapshot{}
	err = json.Unmarshal(decrypted, rawSnapshot)
	if err != nil {
		log.Err(err).Msg("unable to unmarshal snapshot data")
		return nil, err
	}

	snapshot, err := ProcessRawSnapshot(rawSnapshot)
	if err != nil {
		return nil, err
	}

	if hash != "" {
		snapshotHash, err := snapshot.Hash()
		if err != nil {
			return nil, err
		}
		if snapshotHash != hash {
			return nil, fmt.Errorf("snapshot hash %s does not match expected hash %s", snapshotHash, hash)
		}
	}
	return snapshot, nil
}

// ProcessRawSnapshot validates a raw snapshot document. Spokes are
// sorted by endpoint id so the content hash is stable across documents
// listing the same set in different order.
func ProcessRawSnapshot(rawSnapshot *RawSnapshot) (*SpokeSetSnapshot, error) {
	if !common.IsHexAddress(rawSnapshot.Hub) {
		return nil, fmt.Errorf("invalid hub address %s", rawSnapshot.Hub)
	}

	spokes := make([]SpokeKey, 0, len(rawSnapshot.Spokes))
	for _, s := range rawSnapshot.Spokes {
		eid, err := strconv.ParseUint(s.Eid, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid spoke eid %s: %w", s.Eid, err)
		}
		if eid == 0 {
			return nil, fmt.Errorf("spoke eid must not be zero")
		}
		if !common.IsHexAddress(s.Vault) {
			return nil, fmt.Errorf("invalid spoke vault address %s", s.Vault)
		}
		spokes = append(spokes, SpokeKey{
			Eid:   uint32(eid),
			Vault: common.HexToAddress(s.Vault),
		})
	}

	slices.SortFunc(spokes, func(a, b SpokeKey) int {
		if a.Eid != b.Eid {
			return int(a.Eid) - int(b.Eid)
		}
		return a.Vault.Cmp(b.Vault)
	})

	return &SpokeSetSnapshot{
		Hub:    common.HexToAddress(rawSnapshot.Hub),
		Spokes: spokes,
	}, nil
}
