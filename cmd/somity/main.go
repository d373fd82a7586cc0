package main

import (
	"os"

	"github.com/chalopaltai/somity-ledger/cmd/somity/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
