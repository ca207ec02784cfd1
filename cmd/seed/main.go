package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strings"

	"treasure-hunt/internal/config"
	"treasure-hunt/internal/db"
	"treasure-hunt/internal/geo"
	"treasure-hunt/internal/hunt"
)

// Seeds treasure hunts from a CSV of one street address per row.
func main() {
	filePath := flag.String("file", "treasures.csv", "path to treasures csv")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	file, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("open %s: %v", *filePath, err)
	}
	defer file.Close()

	registry := hunt.NewRegistry(conn, geo.NewNominatim(cfg))

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		log.Fatalf("read %s: %v", *filePath, err)
	}

	created := 0
	for _, record := range records {
		if len(record) == 0 {
			continue
		}
		answer := strings.TrimSpace(record[0])
		if answer == "" {
			continue
		}
		treasure, err := registry.Create(context.Background(), answer)
		if err != nil {
			log.Printf("skipping %q: %v", answer, err)
			continue
		}
		log.Printf("created treasure id=%d answer=%q", treasure.ID, treasure.Answer)
		created++
	}
	log.Printf("seeded %d treasure(s)", created)
}
