// The Licensed Work is (c) 2025 MORE Vaults
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"github.com/MORE-Vaults/vaults-relayer/cli"
)

func main() {
	cli.Execute()
}
