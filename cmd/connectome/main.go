// SPDX-License-Identifier: MIT
// Command connectome computes graph metrics for structural connectomes.
package main

import "github.com/katalvlaran/connectome/internal/cli"

func main() {
	cli.Execute()
}
