// colournodes parses hex colours, converts them to HSL and names them,
// from the command line or as a go-plugin node server.
package main

import (
	"os"

	"github.com/jmylchreest/colournodes/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
