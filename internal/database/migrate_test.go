package database

import (
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// TestMigrationsEmbedded 는 마이그레이션 SQL이 바이너리에 포함되어 있고
// up/down 쌍이 모두 존재함을 검증한다.
func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		t.Fatalf("embedded migrations not readable: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("no embedded migrations found")
	}
	if len(entries)%2 != 0 {
		t.Errorf("expected up/down pairs, got %d files", len(entries))
	}
}

// TestNewMigrationSource 는 포함된 마이그레이션이 iofs 소스로
// 해석 가능한 파일명 규칙을 따르는지 검증한다.
func TestNewMigrationSource(t *testing.T) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("iofs.New returned error: %v", err)
	}
	defer source.Close()

	first, err := source.First()
	if err != nil {
		t.Fatalf("source.First returned error: %v", err)
	}
	if first != 1 {
		t.Errorf("first migration version = %d, want 1", first)
	}
}
