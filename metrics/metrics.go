// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

type RelayerMetrics struct {
	meter api.Meter

	RequestsOpened    api.Int64Counter
	RequestsFulfilled api.Int64Counter
	RequestsFinalized api.Int64Counter
	RequestsRefunded  api.Int64Counter
	SlippageFailures  api.Int64Counter
	PendingNative     api.Int64ObservableGauge

	PendingNativeCount *int64

	Opts api.MeasurementOption
}

// NewRelayerMetrics creates an instance of request lifecycle metrics
func NewRelayerMetrics(meter api.Meter, env, relayerID string) (*RelayerMetrics, error) {
	opts := api.WithAttributes(
		attribute.String("env", env),
		attribute.String("relayerid", relayerID),
	)

	requestsOpened, err := meter.Int64Counter(
		"relayer.RequestsOpened",
		api.WithDescription("Number of cross-chain action requests opened"),
	)
	if err != nil {
		return nil, err
	}
	requestsFulfilled, err := meter.Int64Counter(
		"relayer.RequestsFulfilled",
		api.WithDescription("Number of requests with delivered accounting data"),
	)
	if err != nil {
		return nil, err
	}
	requestsFinalized, err := meter.Int64Counter(
		"relayer.RequestsFinalized",
		api.WithDescription("Number of requests settled and finalized"),
	)
	if err != nil {
		return nil, err
	}
	requestsRefunded, err := meter.Int64Counter(
		"relayer.RequestsRefunded",
		api.WithDescription("Number of stuck requests refunded"),
	)
	if err != nil {
		return nil, err
	}
	slippageFailures, err := meter.Int64Counter(
		"relayer.SlippageFailures",
		api.WithDescription("Number of executions rejected by the slippage check"),
	)
	if err != nil {
		return nil, err
	}

	pendingNativeCount := new(int64)
	pendingNative, err := meter.Int64ObservableGauge(
		"relayer.PendingNative",
		api.WithInt64Callback(func(context context.Context, result api.Int64Observer) error {
			result.Observe(*pendingNativeCount, opts)
			return nil
		}),
		api.WithDescription("Native currency currently escrowed with open requests"),
	)
	if err != nil {
		return nil, err
	}

	return &RelayerMetrics{
		meter:              meter,
		RequestsOpened:     requestsOpened,
		RequestsFulfilled:  requestsFulfilled,
		RequestsFinalized:  requestsFinalized,
		RequestsRefunded:   requestsRefunded,
		SlippageFailures:   slippageFailures,
		PendingNative:      pendingNative,
		PendingNativeCount: pendingNativeCount,
		Opts:               opts,
	}, nil
}

// TrackPendingNative records the current escrow total for the gauge
// callback.
func (m *RelayerMetrics) TrackPendingNative(total int64) {
	*m.PendingNativeCount = total
}
