// Package probe reads single values from sysfs and procfs style
// pseudo-files, where every file holds one line of text.
package probe

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MaxLineLength bounds how much of a pseudo-file is read.
const MaxLineLength = 512

// Probe returns the first line of base/key. A missing or unreadable file
// reports ok == false, which is distinct from an empty value.
type Probe interface {
	Read(base, key string) (value string, ok bool)
}

type FileProbe struct{}

var _ Probe = FileProbe{}

func (FileProbe) Read(base, key string) (string, bool) {
	f, err := os.Open(filepath.Join(base, key))
	if err != nil {
		return "", false
	}
	defer f.Close()

	return FirstLine(f)
}

// FirstLine returns the first line of r with trailing whitespace removed.
func FirstLine(r io.Reader) (string, bool) {
	line, err := bufio.NewReader(io.LimitReader(r, MaxLineLength)).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false
	}
	return strings.TrimRight(line, " \t\r\n"), true
}

// Map is an in-memory Probe keyed by "base/key".
type Map map[string]string

func (m Map) Read(base, key string) (string, bool) {
	v, ok := m[filepath.Join(base, key)]
	if !ok {
		return "", false
	}
	return FirstLine(strings.NewReader(v))
}
