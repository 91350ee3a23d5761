package main

import (
	"flag"
	"log"

	"CompareBoard/internal/audio"
	"CompareBoard/internal/config"
	"CompareBoard/internal/state"
	"CompareBoard/internal/ui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML settings file")
	writeConfig := flag.Bool("write-config", false, "write the effective settings to -config and exit")
	flag.Parse()

	log.Printf("Starting Compare Board (session %s)", state.SessionID())
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("%v; using defaults", err)
	}

	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	player := audio.New(cfg.Audio)
	ui.RunApp(cfg, player)
}
