package gpl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/pixelbrush/pkg/colormodel"
	"github.com/Faultbox/pixelbrush/pkg/encoding"
)

// Header is the magic first line of every palette file.
const Header = "GIMP Palette"

// Extension is the file extension of palette files.
const Extension = ".gpl"

// MaxLineLength is the longest line Parse keeps; longer lines are skipped.
const MaxLineLength = 64 * 1024

// ErrInvalidHeader is returned when the first line is not the magic header.
var ErrInvalidHeader = errors.New("invalid palette header: expected 'GIMP Palette'")

// ParseFile reads a palette file. The palette name defaults to the file name
// without its extension.
func ParseFile(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening palette: %w", err)
	}
	defer f.Close()

	base := filepath.Base(path)
	p, err := Parse(f, strings.TrimSuffix(base, filepath.Ext(base)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.path = path
	return p, nil
}

// Parse reads a palette from r. name is used unless the stream sets its own
// with a "Name:" line; when several are present the last one wins.
//
// Comment lines, blank lines, unknown metadata keys, lines longer than
// MaxLineLength and color lines that do not start with three integers are
// skipped. A palette without colors gets the black and white fallback entries.
func Parse(r io.Reader, name string) (*Palette, error) {
	br := bufio.NewReader(r)

	header, tooLong, err := readLine(br)
	if errors.Is(err, io.EOF) || tooLong {
		return nil, ErrInvalidHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	magic := strings.TrimSpace(encoding.TrimBOM(encoding.DecodeLine(header)))
	if !strings.EqualFold(magic, Header) {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidHeader, magic)
	}

	p := &Palette{name: name}
	for {
		raw, tooLong, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading palette: %w", err)
		}
		if tooLong {
			continue
		}

		line := strings.TrimSpace(encoding.DecodeLine(raw))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if key, value, ok := splitMetadata(line); ok {
			switch strings.ToLower(key) {
			case "name":
				if value != "" {
					p.name = value
				}
			case "columns":
				if n, err := strconv.Atoi(value); err == nil && n >= 0 {
					p.columns = n
				}
			}
			continue
		}

		if e, ok := parseEntry(line); ok {
			p.entries = append(p.entries, e)
		}
	}

	if len(p.entries) == 0 {
		p.entries = FallbackEntries()
	}
	return p, nil
}

// readLine returns the next line without its terminator. A line longer than
// MaxLineLength is consumed whole and reported with tooLong set.
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return nil, false, err
		}
		if !tooLong {
			if len(line)+len(chunk) > MaxLineLength {
				line, tooLong = nil, true
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

// splitMetadata splits "Key: value" lines. The key must be a single token so
// that color labels containing a colon stay color lines.
func splitMetadata(line string) (key, value string, ok bool) {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, " \t") {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}

// parseEntry parses "R G B [label]". The label keeps its inner spacing.
func parseEntry(line string) (Entry, bool) {
	var channels [3]int
	rest := line
	for i := range channels {
		var field string
		field, rest = nextField(rest)
		v, err := strconv.Atoi(field)
		if err != nil {
			return Entry{}, false
		}
		channels[i] = v
	}

	rgb := colormodel.RGB{R: channels[0], G: channels[1], B: channels[2]}
	return Entry{
		Color: rgb.Normalized(),
		Label: strings.TrimSpace(rest),
	}, true
}

// nextField returns the first whitespace-delimited field of s and the text after it.
func nextField(s string) (field, rest string) {
	s = strings.TrimLeft(s, " \t")
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}
