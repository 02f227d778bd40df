package main

import (
	"log"

	"github.com/nhoxwy/pos-availability/config"
	"github.com/nhoxwy/pos-availability/internal/app"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}
	app.Run(cfg)
}
