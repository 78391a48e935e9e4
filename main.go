package main

import (
	"log"

	"go.uber.org/zap"

	"LocalPaint/internal/ui"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	defer zap.ReplaceGlobals(logger)()

	logger.Info("Starting Local Paint")
	ui.RunApp()
}
