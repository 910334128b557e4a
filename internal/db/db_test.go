package db

import (
	"os"
	"strings"
	"testing"

	"github.com/rogulenkoko/MenuCraft-sub000/internal/db/migrations"
)

// TestEmbeddedMigrations verifies the goose migration files ship inside
// the binary and carry the markers goose needs.
func TestEmbeddedMigrations(t *testing.T) {
	entries, err := migrations.Migrations.ReadDir(".")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no embedded migration files")
	}

	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		data, err := migrations.Migrations.ReadFile(e.Name())
		if err != nil {
			t.Fatalf("read %s: %v", e.Name(), err)
		}
		content := string(data)
		if !strings.Contains(content, "-- +goose Up") {
			t.Errorf("%s is missing the goose Up marker", e.Name())
		}
		if !strings.Contains(content, "-- +goose Down") {
			t.Errorf("%s is missing the goose Down marker", e.Name())
		}
	}
}

func TestInitMigrationCreatesCoreTables(t *testing.T) {
	data, err := migrations.Migrations.ReadFile("00001_init.sql")
	if err != nil {
		t.Fatalf("read init migration: %v", err)
	}
	content := string(data)

	for _, table := range []string{
		"users",
		"profiles",
		"restaurants",
		"menu_documents",
		"menu_generations",
		"billing_events",
	} {
		if !strings.Contains(content, "CREATE TABLE IF NOT EXISTS "+table) {
			t.Errorf("init migration does not create table %s", table)
		}
	}
}

// TestConnectPostgres only runs against a real database.
func TestConnectPostgres(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres()
	defer pool.Close()

	if err := pool.Ping(t.Context()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
