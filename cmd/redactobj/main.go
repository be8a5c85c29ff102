package main

import (
	"os"

	"github.com/dshills/redactobj/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
