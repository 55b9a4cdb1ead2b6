// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package health

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

// StartHealthEndpoint starts /health endpoint on provided port that returns ok on invocation
func StartHealthEndpoint(port string) {
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	log.Info().Msgf("starting /health endpoint on port %s", port)
	_ = http.ListenAndServe(fmt.Sprintf(":%s", port), nil)
}
