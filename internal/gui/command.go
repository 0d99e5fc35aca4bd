package gui

// Command is an editor action triggered by a button or shortcut.
type Command int

const (
	CommandNone Command = iota
	CommandPenSmaller
	CommandPenLarger
	CommandNextColor
	CommandSave
	CommandLoad
	CommandCopy
	CommandPaste
)

var commandNames = [...]string{
	CommandNone:       "none",
	CommandPenSmaller: "pen-smaller",
	CommandPenLarger:  "pen-larger",
	CommandNextColor:  "next-color",
	CommandSave:       "save",
	CommandLoad:       "load",
	CommandCopy:       "copy",
	CommandPaste:      "paste",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}
