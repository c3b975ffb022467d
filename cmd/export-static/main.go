package main

import (
	"flag"
	"log"

	"leibfried_clan_go/config"
)

func main() {
	outDir := flag.String("out", "dist", "directory the site is written to")
	flag.Parse()

	// Load configuration
	cfg := config.Load()

	files, err := exportSite(cfg, *outDir)
	if err != nil {
		log.Fatalf("Failed to export site: %v", err)
	}

	for _, f := range files {
		log.Printf("[INFO] Wrote %s", f)
	}
	log.Printf("Static export completed: %d files in %s", len(files), *outDir)
}
