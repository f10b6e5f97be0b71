// Command taod is a local driver for the TAO packet engine: it wires a
// single in-memory Host, a Keeper, and the sample dummyclient/pingpong
// capabilities, and exposes send/receive/timeout/deploy/query as cobra
// subcommands for manual exercising and demos. It is not a chain node —
// there is no server/cmd bootstrap here, unlike cmd/txd/main.go — because
// the TAO engine this repo builds is a library module, not a full app.
package main

import (
	"fmt"
	"os"

	"github.com/rnbguy/ibc-eureka-tao/cmd/taod/cmd"
)

const envPrefix = "TAOD"

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
