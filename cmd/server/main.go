package main

import (
	"log"
	"net/http"
	"os"

	"treasure-hunt/internal/config"
	"treasure-hunt/internal/db"
	"treasure-hunt/internal/geo"
	"treasure-hunt/internal/notify"
	"treasure-hunt/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := db.ConfigurePool(conn, cfg); err != nil {
		log.Printf("failed to configure db pool: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	dispatcher := notify.NewDispatcher(notify.SenderFromConfig(cfg), cfg.NotifyBuffer)
	defer dispatcher.Close()

	srv := server.New(conn, cfg, geo.NewNominatim(cfg), dispatcher)

	addr := ":8080"
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}
	log.Printf("treasure-hunt server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
