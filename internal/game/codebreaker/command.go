package codebreaker

import "fmt"

// CommandKind identifies a player command.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandAppendColor
	CommandRemoveLast
	CommandSubmit
	CommandQuit
)

// String returns a human-readable name for the command kind.
func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "None"
	case CommandAppendColor:
		return "AppendColor"
	case CommandRemoveLast:
		return "RemoveLast"
	case CommandSubmit:
		return "Submit"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Command is a discrete player input, already decoded from key presses.
type Command struct {
	Kind  CommandKind
	Color int // Color index for CommandAppendColor
}

// Predefined commands without arguments.
var (
	RemoveLastCommand = Command{Kind: CommandRemoveLast}
	SubmitCommand     = Command{Kind: CommandSubmit}
	QuitCommand       = Command{Kind: CommandQuit}
)

// ColorCommand returns a command appending the given color index.
func ColorCommand(color int) Command {
	return Command{Kind: CommandAppendColor, Color: color}
}

// String formats the command for logs.
func (c Command) String() string {
	if c.Kind == CommandAppendColor {
		return fmt.Sprintf("AppendColor(%d)", c.Color)
	}
	return c.Kind.String()
}

// Raw terminal bytes understood by DecodeKey.
const (
	keyBackspace = 0x08
	keyCtrlC     = 0x03
	keyCtrlZ     = 0x1a
	keyEscape    = 0x1b
	keyDelete    = 0x7f
)

// DecodeKey maps a raw input byte to a command.
// Digits 1-9 select colors 0-8, backspace and ctrl+z undo, enter and space
// submit, and q, escape and ctrl+c quit. Other bytes are not commands.
func DecodeKey(b byte) (Command, bool) {
	switch {
	case b >= '1' && b <= '9':
		return ColorCommand(int(b - '1')), true
	case b == keyBackspace || b == keyDelete || b == keyCtrlZ:
		return RemoveLastCommand, true
	case b == '\r' || b == '\n' || b == ' ':
		return SubmitCommand, true
	case b == 'q' || b == keyEscape || b == keyCtrlC:
		return QuitCommand, true
	}
	return Command{}, false
}
