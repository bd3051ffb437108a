package main

import (
	"log"

	"github.com/maazimam/parkeasy-sub000/internal/app"
	"github.com/maazimam/parkeasy-sub000/internal/config"
)

func main() {
	log.SetPrefix("parkeasy: ")
	log.SetFlags(log.LstdFlags | log.LUTC)

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
