// Package gcode implements a bespoke line tokenizer and line-addressable
// program builder for the pipeline's input dialect, plus canonical export
// of a parsed Program via the 256dpi/gcode library.
package gcode

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// InitialBufferSize and MaxLineLength bound the scanner buffer so pathological
// single-line files don't silently truncate.
const (
	InitialBufferSize = 64 * 1024
	MaxLineLength     = 1024 * 1024
)

// Parse reads path as a G-code program. Every non-comment-only line is
// passed through ParseLine with the running file-position counter as its
// default line number; the counter is incremented once per accepted line,
// regardless of whether an N override took effect.
func Parse(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open gcode file: %w", err)
	}
	defer f.Close()

	program := NewProgram()

	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, InitialBufferSize)
	scanner.Buffer(buf, MaxLineLength)

	counter := 0
	for scanner.Scan() {
		line, block, ok := ParseLine(counter, scanner.Text())
		if !ok {
			continue
		}
		program.Set(line, block)
		counter++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read gcode file: %w", err)
	}

	return program, nil
}

// ParseLine strips comments from text, tokenizes what remains, and resolves
// the effective line number. It returns ok=false when nothing is left after
// comment stripping.
func ParseLine(defaultLine int, text string) (line int, block Block, ok bool) {
	cleaned := stripComments(text)
	fields := strings.Fields(cleaned)
	if len(fields) == 0 {
		return 0, Block{}, false
	}

	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		tokens = append(tokens, parseToken(f))
	}

	line = defaultLine
	if tokens[0].Letter == 'N' {
		line = int(tokens[0].Major)
		tokens = tokens[1:]
	}

	return line, Block{Tokens: tokens}, true
}

// stripComments removes nested parenthesized comments and truncates the
// line at the first unescaped ';' or '%'.
func stripComments(line string) string {
	var sb strings.Builder
	depth := 0
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && (c == ';' || c == '%'):
			return sb.String()
		case depth == 0:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// ReadLines splits r into raw text lines, mirroring the scanning discipline
// used by Parse, for callers (such as header scanning) that want the raw
// lines without building a Program.
func ReadLines(r io.Reader, limit int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, InitialBufferSize)
	scanner.Buffer(buf, MaxLineLength)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if limit > 0 && len(lines) >= limit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}
	return lines, nil
}
