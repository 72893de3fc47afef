package main

import (
	"os"

	"github.com/linguaverse/statistics-service/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
