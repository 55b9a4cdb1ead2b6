// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package jobs

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/MORE-Vaults/vaults-relayer/relayer/requests"
)

// StartStuckRequestSweep periodically scans every ledger's open requests
// and refunds the ones past their stuck threshold. Requests that are not
// yet stuck are left alone.
func StartStuckRequestSweep(ctx context.Context, ledgers []*requests.Ledger, interval time.Duration) {
	for {
		time.Sleep(interval)
		log.Info().Msg("Starting stuck request sweep")
		for _, ledger := range ledgers {
			sweepLedger(ctx, ledger)
		}
	}
}

func sweepLedger(ctx context.Context, ledger *requests.Ledger) {
	guids, err := ledger.OpenGuids()
	if err != nil {
		log.Err(err).Msg("failed listing open requests")
		return
	}

	for _, guid := range guids {
		err := ledger.RefundIfNecessary(ctx, ledger.Manager(), guid)
		if err != nil {
			if errors.Is(err, requests.ErrRequestNotStuck) {
				continue
			}
			log.Err(err).Str("guid", guid.String()).Msg("failed refunding stuck request")
		}
	}
}
