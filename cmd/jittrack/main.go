// Package main is the entry point for the jittrack CLI.
package main

import (
	"os"

	"github.com/ProtonOS/ProtonOS-sub011/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
