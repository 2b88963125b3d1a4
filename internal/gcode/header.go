package gcode

import (
	"io"
	"strconv"
	"strings"
)

// HeaderScanLines bounds how far into the file we look for `;key: value`
// banner comments before giving up.
const HeaderScanLines = 50

// HeaderInfo is cosmetic metadata scanned from a file's leading comment
// block (as slicer/CAM front ends emit). It never drives motion; it only
// feeds the CLI's informational startup banner.
type HeaderInfo struct {
	Machine    string
	ToolHead   string
	TotalLines int64
	IsRotate   bool
}

// ExtractHeaderInfo scans the first HeaderScanLines lines of r, of any kind,
// and reads banner fields from those that are comments of the form
// ";key: value". Absence of any field is not
// an error; the banner is simply omitted.
func ExtractHeaderInfo(r io.Reader) (*HeaderInfo, error) {
	lines, err := ReadLines(r, HeaderScanLines)
	if err != nil {
		return nil, err
	}

	info := &HeaderInfo{}
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, ";") {
			continue
		}
		body := strings.TrimPrefix(line, ";")
		key, value, ok := strings.Cut(body, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "machine":
			info.Machine = value
		case "tool_head", "toolhead":
			info.ToolHead = value
		case "is_rotate":
			info.IsRotate = value == "true" || value == "1"
		case "file_total_lines":
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				info.TotalLines = n
			}
		}
	}

	return info, nil
}
