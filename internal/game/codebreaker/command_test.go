package codebreaker

import "testing"

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name     string
		key      byte
		expected Command
		ok       bool
	}{
		{"digit 1", '1', ColorCommand(0), true},
		{"digit 6", '6', ColorCommand(5), true},
		{"digit 9", '9', ColorCommand(8), true},
		{"digit 0 is not a color", '0', Command{}, false},
		{"backspace", 0x08, RemoveLastCommand, true},
		{"delete", 0x7f, RemoveLastCommand, true},
		{"ctrl+z", 0x1a, RemoveLastCommand, true},
		{"carriage return", '\r', SubmitCommand, true},
		{"line feed", '\n', SubmitCommand, true},
		{"space", ' ', SubmitCommand, true},
		{"q", 'q', QuitCommand, true},
		{"escape", 0x1b, QuitCommand, true},
		{"ctrl+c", 0x03, QuitCommand, true},
		{"letter", 'x', Command{}, false},
		{"upper Q", 'Q', Command{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, ok := DecodeKey(tc.key)
			if ok != tc.ok || cmd != tc.expected {
				t.Errorf("DecodeKey(%#x) = %v, %v, expected %v, %v", tc.key, cmd, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd      Command
		expected string
	}{
		{ColorCommand(3), "AppendColor(3)"},
		{RemoveLastCommand, "RemoveLast"},
		{SubmitCommand, "Submit"},
		{QuitCommand, "Quit"},
		{Command{}, "None"},
	}

	for _, tc := range tests {
		if got := tc.cmd.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPlaying.Terminal() {
		t.Error("Playing should not be terminal")
	}
	if !StatusWon.Terminal() || !StatusLost.Terminal() {
		t.Error("Won and Lost should be terminal")
	}
}

func TestSequenceAndHintString(t *testing.T) {
	if got := (Sequence{0, 5, 2}).String(); got != "[1 6 3]" {
		t.Errorf("Sequence.String() = %q, expected %q", got, "[1 6 3]")
	}
	if got := (Hint{Bulls: 2, Cows: 1}).String(); got != "2B1C" {
		t.Errorf("Hint.String() = %q, expected %q", got, "2B1C")
	}
}
