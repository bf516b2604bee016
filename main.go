package main

import (
	"os"

	"github.com/ska-dan/notify/pkg/controller/cli"
)

func main() {
	if cli.Run(os.Args) != nil {
		os.Exit(1)
	}
}
