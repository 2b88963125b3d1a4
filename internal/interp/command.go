// Package interp decomposes one parsed block into an ordered stream of
// Command values: straight-line moves via a parametric DDA walk, circular
// arcs via an angle sweep, both grounded on the same parametric-line
// technique (point = start + t*(end-start)) used elsewhere in this lineage
// to locate a point along a segment at parameter t.
package interp

// CommandKind tags the variant carried by a Command.
type CommandKind int

const (
	CmdStepperX CommandKind = iota
	CmdStepperY
	CmdStepperZ
	CmdStepperE
	CmdFeedrate
	CmdDone
	CmdQuit
)

func (k CommandKind) String() string {
	switch k {
	case CmdStepperX:
		return "StepperX"
	case CmdStepperY:
		return "StepperY"
	case CmdStepperZ:
		return "StepperZ"
	case CmdStepperE:
		return "StepperE"
	case CmdFeedrate:
		return "Feedrate"
	case CmdDone:
		return "Done"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is the message unit carried from the interpolator through the
// command channel to the pulse aggregator.
type Command struct {
	Kind  CommandKind
	Value float64
}

// StepperCommand emits one pulse of the given direction (-1 or +1) on axis.
func StepperCommand(axis int, dir int64) Command {
	return Command{Kind: CommandKind(axis), Value: float64(dir)}
}

// FeedrateCommand announces a new feedrate before motion begins.
func FeedrateCommand(rate float64) Command {
	return Command{Kind: CmdFeedrate, Value: rate}
}

// DoneCommand marks the end of one block's pulse stream.
func DoneCommand() Command {
	return Command{Kind: CmdDone}
}

// QuitCommand signals pipeline teardown.
func QuitCommand() Command {
	return Command{Kind: CmdQuit}
}
