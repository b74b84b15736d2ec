package main

import (
	"log"

	"github.com/joho/godotenv"

	"changaya_backend/internal/app"
)

func main() {
	// .env is optional; deployed environments set real variables.
	_ = godotenv.Load()

	if err := app.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
