package gcode

import "sort"

// Program is a mapping from line number to block, built once by the parser
// and never mutated thereafter. Keys are unique; a later occurrence of a
// line number overwrites an earlier one.
type Program struct {
	blocks map[int]Block
}

// NewProgram returns an empty program.
func NewProgram() *Program {
	return &Program{blocks: make(map[int]Block)}
}

// Set stores (or overwrites) the block at the given line number.
func (p *Program) Set(line int, b Block) {
	p.blocks[line] = b
}

// Get returns the block at the given line number, if present.
func (p *Program) Get(line int) (Block, bool) {
	b, ok := p.blocks[line]
	return b, ok
}

// Len returns the number of blocks in the program.
func (p *Program) Len() int {
	return len(p.blocks)
}

// Lines returns the program's line numbers in increasing order. This is
// used for deterministic export, not for driving the program counter walk
// (the driver walks pc = 0, 1, 2, ... and stops on the first missing key).
func (p *Program) Lines() []int {
	lines := make([]int, 0, len(p.blocks))
	for line := range p.blocks {
		lines = append(lines, line)
	}
	sort.Ints(lines)
	return lines
}
