package gcode

import (
	"fmt"
	"io"

	extgcode "github.com/256dpi/gcode"
)

// Export writes program back out in canonical form using the 256dpi/gcode
// library's serializer: one line per block, letters and numeric formatting
// normalized, comments stripped. This is pure diagnostics (it backs
// --dump-normalized) and never feeds back into motion.
func Export(program *Program, w io.Writer) error {
	file := &extgcode.File{}
	for _, line := range program.Lines() {
		block, _ := program.Get(line)
		var codes []extgcode.GCode
		for _, t := range block.Tokens {
			codes = append(codes, extgcode.GCode{
				Letter: string(t.Letter),
				Value:  t.Value(),
			})
		}
		file.Lines = append(file.Lines, extgcode.Line{Codes: codes})
	}
	if err := extgcode.WriteFile(w, file); err != nil {
		return fmt.Errorf("failed to write normalized gcode: %w", err)
	}
	return nil
}
