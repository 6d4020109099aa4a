package main

import (
	"os"

	"github.com/mimeset/mimeset/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
