package config

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"clusterctl/pkg/logging"
)

// ReadKeyValueFile parses a line-oriented "key = value" file.
//
// Blank lines and lines starting with '#' are skipped. Every other line must
// contain exactly one '='; keys are trimmed and lowercased, values trimmed.
// A file that cannot be opened is reported as a warning and yields an empty
// map, which is the normal situation on first run.
func ReadKeyValueFile(path string) (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Warn("Config", "cannot read '%s' (this is ok on first run)", path)
		} else {
			logging.Warn("Config", "cannot read '%s' (this is ok on first run): %v", path, err)
		}
		return values, nil
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := splitAssignment(line)
		if !ok {
			return nil, NewError(KindParse, path, "syntax error '%s'", line).AtLine(lineNumber)
		}
		values[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, NewError(KindIO, path, "cannot read file").Wrap(err)
	}

	logging.Debug("Config", "read %d entries from %s", len(values), path)
	return values, nil
}

// splitAssignment splits "key = value" on its only '='.
func splitAssignment(line string) (string, string, bool) {
	if strings.Count(line, "=") != 1 {
		return "", "", false
	}
	key, value, _ := strings.Cut(line, "=")
	return strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value), true
}
