// Command lizard decompresses Mozilla-flavoured LZ4 (mozlz4, jsonlz4) files.
package main

import (
	"os"

	"github.com/arnau/lizard/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
