package main

import (
	"os"

	"github.com/mailund/stralg-go/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
