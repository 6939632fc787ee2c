// Package main is the entry point for the cfcsctl operator CLI.
package main

import (
	"os"

	"cfcs/cmd/cfcsctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
