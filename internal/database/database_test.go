package database

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pipoo-ai/pipoo/internal/model"
)

func testLogger() *log.Logger {
	return log.New(os.Stderr, "[test] ", log.LstdFlags)
}

func TestNewSQLite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db, err := New("", dir, testLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "pipoo.db")); err != nil {
		t.Fatalf("database file not created: %v", err)
	}

	// Migration ran: both tables accept writes.
	if err := db.Create(&model.Note{Content: "hello"}).Error; err != nil {
		t.Fatalf("insert note: %v", err)
	}
	if err := db.Create(&model.Reminder{Content: "hello", WhenText: "in 1 hour"}).Error; err != nil {
		t.Fatalf("insert reminder: %v", err)
	}
}

func TestNewSetsAsideCorruptSQLite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "pipoo.db")
	if err := os.WriteFile(path, []byte("this is not a database"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	db, err := New("", dir, testLogger())
	if err != nil {
		t.Fatalf("New with corrupt store: %v", err)
	}
	if err := db.Create(&model.Note{Content: "fresh start"}).Error; err != nil {
		t.Fatalf("insert into fresh store: %v", err)
	}

	// The unreadable file is preserved under a corrupt suffix.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var setAside bool
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".corrupt-") {
			setAside = true
			data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				t.Fatalf("read set-aside file: %v", err)
			}
			if string(data) != "this is not a database" {
				t.Fatal("set-aside file lost its original contents")
			}
		}
	}
	if !setAside {
		t.Fatal("corrupt file was not set aside")
	}
}
