package main

import (
	"os"

	"github.com/relcut/relcut/internal/cli"
)

func main() {
	err := cli.Execute()
	os.Exit(cli.ExitCode(err))
}
