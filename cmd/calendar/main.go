package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"shared-calendar/internal/cli"
)

var version = "dev"

func main() {
	_ = godotenv.Load()
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
