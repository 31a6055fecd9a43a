package input

import "strings"

// Binding ties a key name to a command. Key names are lower case and use
// the names terminal key events match against: "w", "up", "escape",
// "ctrl+c", "space".
type Binding struct {
	Key     string
	Command Command
}

// Keymap is an ordered list of bindings. Earlier bindings win.
type Keymap []Binding

// DefaultKeymap returns the standard bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		{"w", MoveForward},
		{"s", MoveBack},
		{"a", MoveLeft},
		{"d", MoveRight},
		{"e", MoveUp},
		{"space", MoveUp},
		{"c", MoveDown},
		{"up", TiltUp},
		{"k", TiltUp},
		{"down", TiltDown},
		{"j", TiltDown},
		{"left", TurnLeft},
		{"h", TurnLeft},
		{"right", TurnRight},
		{"l", TurnRight},
		{"r", Reset},
		{"q", Quit},
		{"escape", Quit},
		{"ctrl+c", Quit},
	}
}

// Lookup returns the command bound to a key name. Matching ignores case.
func (k Keymap) Lookup(name string) (Command, bool) {
	return k.Match(func(key string) bool {
		return strings.EqualFold(key, name)
	})
}

// Match returns the command of the first binding whose key satisfies
// match. Presenters whose events know how to compare themselves to a key
// name pass that comparison in.
func (k Keymap) Match(match func(key string) bool) (Command, bool) {
	for _, b := range k {
		if match(b.Key) {
			return b.Command, true
		}
	}
	return None, false
}

// Keys returns the key names bound to cmd, in keymap order.
func (k Keymap) Keys(cmd Command) []string {
	var keys []string
	for _, b := range k {
		if b.Command == cmd {
			keys = append(keys, b.Key)
		}
	}
	return keys
}
