package main

import (
	"os"

	"github.com/evanhall-dev/shiplog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
