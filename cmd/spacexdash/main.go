package main

import (
	"os"

	"github.com/wonny/spacexdash/backend/cmd/spacexdash/commands"
)

// main is the entry point for the SpaceX dashboard CLI
// ⭐ 통합 CLI 진입점: go run ./cmd/spacexdash [command]
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
