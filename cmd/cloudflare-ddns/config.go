package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// configStore reads and rewrites a plain key=value config file.
//
// The file may contain blank lines and "#" comments, both standalone and
// trailing an entry. Rewrites only touch the line carrying the target key;
// everything else round-trips unchanged.
type configStore struct {
	path    string
	entries map[string]string
}

func loadConfig(path string) (*configStore, error) {
	cs := &configStore{path: path, entries: make(map[string]string)}

	contents, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read config file %q: %w", path, err)
	}

	if err := parseConfig(string(contents), &entryCollector{entries: cs.entries}); err != nil {
		return nil, fmt.Errorf("unable to parse config file %q: %w", path, err)
	}
	return cs, nil
}

func (cs *configStore) entry(key string) (string, bool) {
	value, ok := cs.entries[key]
	return value, ok
}

// setEntry rewrites the config file with the entry for key replaced by
// value, appending the entry when the key is not present yet. The file is
// created with owner-only permissions since it holds the API token.
func (cs *configStore) setEntry(key, value string) error {
	contents, err := os.ReadFile(cs.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("unable to read config file %q: %w", cs.path, err)
	}

	rw := &configRewriter{key: key, value: value}
	if err := parseConfig(string(contents), rw); err != nil {
		return fmt.Errorf("unable to parse config file %q: %w", cs.path, err)
	}
	if !rw.replaced {
		rw.out.WriteString(key + "=" + value + "\n")
	}

	if err := os.WriteFile(cs.path, []byte(rw.out.String()), 0600); err != nil {
		return fmt.Errorf("unable to write config file %q: %w", cs.path, err)
	}
	cs.entries[key] = value
	return nil
}

// lineProcessor receives each classified config line exactly once. Entry
// lines arrive parsed alongside their original text so an implementation can
// either consume the parts or reproduce the line untouched.
type lineProcessor interface {
	passthrough(line string)
	entry(line, key, value, comment string)
}

// entryCollector records entries into a map and ignores everything else.
type entryCollector struct {
	entries map[string]string
}

func (c *entryCollector) passthrough(string) {}

func (c *entryCollector) entry(_, key, value, _ string) {
	c.entries[key] = value
}

// configRewriter reproduces the file, substituting the value on the line
// whose key matches. A trailing comment on that line is kept.
type configRewriter struct {
	key      string
	value    string
	replaced bool
	out      strings.Builder
}

func (w *configRewriter) passthrough(line string) {
	w.out.WriteString(line)
	w.out.WriteString("\n")
}

func (w *configRewriter) entry(line, key, _, comment string) {
	if key != w.key {
		w.passthrough(line)
		return
	}
	w.replaced = true
	w.out.WriteString(key + "=" + w.value)
	if comment != "" {
		w.out.WriteString(" " + comment)
	}
	w.out.WriteString("\n")
}

// parseConfig classifies every line as blank/comment or key=value and feeds
// it to the processor. Anything else fails with the line number.
func parseConfig(contents string, processor lineProcessor) error {
	scanner := bufio.NewScanner(strings.NewReader(contents))
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		orig := scanner.Text()
		line := strings.TrimSpace(orig)

		if line == "" || strings.HasPrefix(line, "#") {
			processor.passthrough(orig)
			continue
		}

		comment := ""
		if i := strings.Index(line, "#"); i >= 0 {
			line, comment = strings.TrimSpace(line[:i]), line[i:]
		}

		key, value, found := strings.Cut(line, "=")
		if !found || strings.Contains(value, "=") {
			return fmt.Errorf("config file is not valid (line %d: %q)", lineNumber, line)
		}
		processor.entry(orig, strings.TrimSpace(key), strings.TrimSpace(value), comment)
	}
	return scanner.Err()
}
