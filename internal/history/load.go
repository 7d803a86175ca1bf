package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/megapick/internal/model"
)

type drawsFile struct {
	Draw []struct {
		Label   string `toml:"label"`
		Numbers []int  `toml:"numbers"`
	} `toml:"draw"`
}

// LoadEntries reads draws from path. Files ending in .toml are decoded as
// [[draw]] tables; anything else is read as one draw per line.
// Numbers are not range-checked here.
func LoadEntries(path string) ([]Entry, error) {
	if path == "" {
		return nil, fmt.Errorf("draws path is empty")
	}
	var (
		entries []Entry
		err     error
	)
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		entries, err = loadTOML(path)
	} else {
		entries, err = loadLines(path)
	}
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("draws file %s is empty", path)
	}
	return entries, nil
}

func loadTOML(path string) ([]Entry, error) {
	var file drawsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to decode draws: %w", err)
	}
	entries := make([]Entry, 0, len(file.Draw))
	for i, d := range file.Draw {
		label := d.Label
		if label == "" {
			label = fmt.Sprintf("#%d", i+1)
		}
		entries = append(entries, Entry{Label: label, Draw: model.Draw(d.Numbers)})
	}
	return entries, nil
}

func loadLines(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only draws file.
			_ = cerr
		}
	}()

	var entries []Entry
	lineNo := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		draw, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		entries = append(entries, Entry{Label: fmt.Sprintf("#%d", len(entries)+1), Draw: draw})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseLine(line string) (model.Draw, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == ';'
	})
	draw := make(model.Draw, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", field)
		}
		draw = append(draw, n)
	}
	return draw, nil
}
