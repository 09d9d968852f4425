// Package main is the entry point of the langradar CLI.
package main

import (
	"github.com/langradar/langradar/cmd"
	"github.com/langradar/langradar/internal/contract"
)

func main() {
	err := cmd.Execute()
	if cleanupErr := cmd.Cleanup(); cleanupErr != nil {
		contract.LogWarn("Failed to close catalog", cleanupErr)
	}
	if err != nil {
		contract.LogFatal("Error starting CLI", err)
	}
}
