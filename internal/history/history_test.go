package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultReturnsCopy(t *testing.T) {
	first := Default()
	if len(first) != len(defaultDraws) {
		t.Fatalf("expected %d draws, got %d", len(defaultDraws), len(first))
	}
	first[0][0] = 99
	second := Default()
	if second[0][0] != 1 {
		t.Fatalf("default table was mutated: %v", second[0])
	}
}

func TestDefaultEntriesLabels(t *testing.T) {
	entries := DefaultEntries()
	if entries[0].Label != "2024" || entries[len(entries)-1].Label != "2009" {
		t.Fatalf("unexpected labels: %s .. %s", entries[0].Label, entries[len(entries)-1].Label)
	}
}

func TestLoadEntriesLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draws.txt")
	content := "# year-end draws\n1 2 3 4 5 6\n\n7,8,9,10,11,12  # trailing\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write draws: %v", err)
	}
	entries, err := LoadEntries(path)
	if err != nil {
		t.Fatalf("load entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].Label != "#2" || entries[1].Draw[5] != 12 {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}

func TestLoadEntriesLinesRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draws.txt")
	if err := os.WriteFile(path, []byte("1 2 x 4 5 6\n"), 0o644); err != nil {
		t.Fatalf("write draws: %v", err)
	}
	if _, err := LoadEntries(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadEntriesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draws.toml")
	content := `
[[draw]]
label = "2024"
numbers = [1, 17, 19, 29, 50, 57]

[[draw]]
numbers = [21, 24, 33, 41, 45, 56]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write draws: %v", err)
	}
	entries, err := LoadEntries(path)
	if err != nil {
		t.Fatalf("load entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Label != "2024" || entries[1].Label != "#2" {
		t.Fatalf("unexpected labels: %q %q", entries[0].Label, entries[1].Label)
	}
	if entries[1].Draw[0] != 21 {
		t.Fatalf("unexpected numbers: %v", entries[1].Draw)
	}
}

func TestLoadEntriesEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draws.txt")
	if err := os.WriteFile(path, []byte("# nothing\n"), 0o644); err != nil {
		t.Fatalf("write draws: %v", err)
	}
	if _, err := LoadEntries(path); err == nil {
		t.Fatalf("expected error for empty file")
	}
}
