package main

import (
	"log"

	"campuslinkhub/config"
	"campuslinkhub/internal/server"
)

func main() {
	cfg := config.LoadConfig()

	if err := server.Run(cfg); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
