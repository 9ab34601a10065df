// Package testdata reads the data files of table driven tests.
//
// Data files are line oriented, in the style of the Unicode Character
// Database: fields are separated by ';', everything after the last '#' of a
// line is a comment, and lines starting with '#' are skipped. Fields may
// contain '#' if the line carries a comment. Code-points are written
// as sequences of hexadecimal numbers, separated by white space.
package testdata

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/npillmayer/textbreak"
)

// File is an open test data file.
type File struct {
	in      *os.File
	scanner *bufio.Scanner
	lineno  int
	fields  []string
	comment string
}

// Path returns the path of the named test data file.
func Path(name string) string {
	_, pkgfile, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgfile), "files", name)
}

// Open opens the named test data file.
func Open(name string) (*File, error) {
	f, err := os.Open(Path(name))
	if err != nil {
		return nil, textbreak.WrapError(err, textbreak.EMISSING, "cannot open test data %s", name)
	}
	return &File{in: f, scanner: bufio.NewScanner(f)}, nil
}

// Scan advances to the next data line. It returns false at the end of the
// file or on a read error.
func (tf *File) Scan() bool {
	for tf.scanner.Scan() {
		tf.lineno++
		text := strings.TrimSpace(tf.scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		tf.comment = ""
		if i := strings.LastIndexByte(text, '#'); i >= 0 {
			text, tf.comment = text[:i], strings.TrimSpace(text[i+1:])
		}
		tf.fields = strings.Split(text, ";")
		for i := range tf.fields {
			tf.fields[i] = strings.TrimSpace(tf.fields[i])
		}
		return true
	}
	return false
}

// Field returns field i (0…n-1) of the current line, or "".
func (tf *File) Field(i int) string {
	if i < 0 || i >= len(tf.fields) {
		return ""
	}
	return tf.fields[i]
}

// Comment returns the comment of the current line.
func (tf *File) Comment() string {
	return tf.comment
}

// Line returns the line number of the current line.
func (tf *File) Line() int {
	return tf.lineno
}

// Err returns the first read error.
func (tf *File) Err() error {
	return tf.scanner.Err()
}

// Close closes the file.
func (tf *File) Close() error {
	return tf.in.Close()
}

// Runes parses a sequence of hexadecimal code-points.
func Runes(field string) ([]rune, error) {
	var rs []rune
	for _, token := range strings.Fields(field) {
		n, err := strconv.ParseUint(token, 16, 32)
		if err != nil {
			return nil, textbreak.WrapError(err, textbreak.EINVALID, "invalid code-point %q", token)
		}
		rs = append(rs, rune(n))
	}
	return rs, nil
}

// Ints parses a sequence of decimal integers.
func Ints(field string) ([]int, error) {
	var ns []int
	for _, token := range strings.Fields(field) {
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, textbreak.WrapError(err, textbreak.EINVALID, "invalid number %q", token)
		}
		ns = append(ns, n)
	}
	return ns, nil
}
