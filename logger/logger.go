// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogger sets up the global logger with the provided level.
func ConfigureLogger(level zerolog.Level, w io.Writer) {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Caller().Logger()
}
