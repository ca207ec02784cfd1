package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"treasure-hunt/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const migrationsDir = "db/migrations"

func main() {
	create := flag.String("create", "", "create empty up/down migration files with the given name instead of migrating")
	flag.Parse()

	if *create != "" {
		if err := createMigration(*create); err != nil {
			log.Fatalf("create migration failed: %v", err)
		}
		return
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	m, err := migrate.New("file://"+migrationsDir, mustDatabaseURL())
	if err != nil {
		log.Fatalf("migration setup failed: %v", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatalf("database migration failed: %v", err)
	}
	log.Println("database migrations applied")
}

func createMigration(name string) error {
	if strings.ContainsAny(name, " \t") {
		return fmt.Errorf("migration name must not contain whitespace")
	}

	version := time.Now().UTC().Format("20060102150405")
	base := fmt.Sprintf("%s_%s", version, name)

	if err := os.MkdirAll(migrationsDir, 0o755); err != nil {
		return err
	}
	for _, stub := range []struct{ path, body string }{
		{filepath.Join(migrationsDir, base+".up.sql"), "-- up migration\n"},
		{filepath.Join(migrationsDir, base+".down.sql"), "-- down migration\n"},
	} {
		if _, err := os.Stat(stub.path); err == nil {
			return fmt.Errorf("file already exists: %s", stub.path)
		} else if !os.IsNotExist(err) {
			return err
		}
		if err := os.WriteFile(stub.path, []byte(stub.body), 0o644); err != nil {
			return err
		}
		log.Printf("created %s", stub.path)
	}
	return nil
}

func mustDatabaseURL() string {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}
	return dsn
}
