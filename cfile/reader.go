package cfile

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/brewos-io/logotool/rgb565"
)

var (
	// ErrNoArray is returned when no recognized pixel array declaration is
	// found in the source file.
	ErrNoArray = errors.New("cfile: no pixel array declaration found")

	// ErrUnterminated is returned when an array declaration has no closing
	// brace.
	ErrUnterminated = errors.New("cfile: pixel array is unterminated")

	errOddBytes = errors.New("cfile: uint8_t array holds an odd number of bytes")
)

var declPattern = regexp.MustCompile(`(?:static\s+)?const\s+uint(8|16)_t\s+(\w+)\s*\[\s*\]`)

// ArrayDecl is a pixel array recovered from a previously generated source
// file.
type ArrayDecl struct {
	Name    string
	Values  []rgb565.Color
	Skipped int // malformed numeric tokens dropped by the lenient parser
}

// ParseArray locates the first pixel array declaration in r and parses its
// RGB565 values. uint16_t arrays hold one value per element; uint8_t arrays
// hold little-endian byte pairs. Hexadecimal and decimal literals are both
// accepted and comment lines are ignored. A token that fails to parse is
// skipped and counted rather than failing the run, so a stray fragment in
// the array body does not lose the remaining pixels.
func ParseArray(r io.Reader) (*ArrayDecl, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	loc := declPattern.FindSubmatchIndex(content)
	if loc == nil {
		return nil, ErrNoArray
	}
	elemWidth := string(content[loc[2]:loc[3]])
	name := string(content[loc[4]:loc[5]])

	open := bytes.IndexByte(content[loc[1]:], '{')
	if open < 0 {
		return nil, ErrUnterminated
	}
	body := content[loc[1]+open+1:]

	end := bytes.Index(body, []byte("};"))
	if end < 0 {
		return nil, ErrUnterminated
	}
	body = body[:end]

	decl := &ArrayDecl{Name: name}

	bitSize := 16
	if elemWidth == "8" {
		bitSize = 8
	}

	var raw []uint16
	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		for _, tok := range strings.Split(strings.TrimSuffix(line, ","), ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			v, err := strconv.ParseUint(tok, 0, bitSize)
			if err != nil {
				decl.Skipped++
				continue
			}
			raw = append(raw, uint16(v))
		}
	}

	if elemWidth == "16" {
		decl.Values = make([]rgb565.Color, len(raw))
		for i, v := range raw {
			decl.Values[i] = rgb565.Color(v)
		}
		return decl, nil
	}

	if len(raw)%2 != 0 {
		return nil, errOddBytes
	}
	decl.Values = make([]rgb565.Color, len(raw)/2)
	for i := range decl.Values {
		decl.Values[i] = rgb565.FromBytes(byte(raw[2*i]), byte(raw[2*i+1]))
	}
	return decl, nil
}
