package main

import (
	"os"

	"github.com/pikaos/birdnest/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
