package main

import (
	"flag"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/pkg/profile"

	"ribbit/internal/config"
	"ribbit/internal/server"
	"ribbit/internal/track"
)

var (
	configPath = flag.String("config", "", "config file (default: user config dir)")
	addr       = flag.String("addr", "", "listen address (overrides config)")
	file       = flag.String("file", "", "annotation file to serve (default: built-in sample)")
	profMode   = flag.String("profile", "", "profile the server: cpu or mem")
)

func loadSet(path string) (*track.Set, error) {
	if path == "" {
		return track.ParseString(track.Sample), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open annotations")
	}
	defer f.Close()
	return track.Parse(f)
}

func main() {
	flag.Parse()
	switch *profMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Fatalf("unknown profile mode %q", *profMode)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	gin.SetMode(cfg.Server.Mode)

	set, err := loadSet(*file)
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range set.Warnings {
		log.Printf("parse warning: %s", w)
	}
	log.Printf("serving %d regions on %d contigs at %s", set.Regions(), len(set.Order), cfg.Server.Addr)

	router, err := server.NewRouter(set, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := router.Run(cfg.Server.Addr); err != nil {
		log.Fatal(err)
	}
}
