package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rdcatlas/rdcatlas-backend/internal/app"
)

func main() {
	// Missing .env is fine in containerized deploys; env vars win anyway.
	_ = godotenv.Load()

	application, err := app.New()
	if err != nil {
		fmt.Printf("Failed to init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	addr := ":" + application.Cfg.Port
	application.Log.Info("Server listening", "addr", addr)
	if err := application.Run(addr); err != nil {
		application.Log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
