package menu

// Command identifies a context-menu action. The numeric values are the
// menu item positions, top to bottom.
type Command int

const (
	// CommandCut deletes the selection after copying it.
	CommandCut Command = iota
	// CommandCopy copies the selection.
	CommandCopy
	// CommandPaste pastes from the clipboard channel.
	CommandPaste
	// CommandSelectAll selects the whole buffer.
	CommandSelectAll
	// CommandClear deletes the whole buffer as one undoable edit.
	CommandClear
	// CommandUndo reverts the last edit.
	CommandUndo
	// CommandRedo reapplies the last undone edit.
	CommandRedo

	numCommands
)

// String returns the menu label for the command.
func (c Command) String() string {
	switch c {
	case CommandCut:
		return "Cut"
	case CommandCopy:
		return "Copy"
	case CommandPaste:
		return "Paste"
	case CommandSelectAll:
		return "Select All"
	case CommandClear:
		return "Clear"
	case CommandUndo:
		return "Undo"
	case CommandRedo:
		return "Redo"
	default:
		return "Unknown"
	}
}

// Valid reports whether c names a real command.
func (c Command) Valid() bool {
	return c >= CommandCut && c < numCommands
}

// Flags carries the enablement state of every menu command, computed
// from the engine's current state.
type Flags struct {
	Cut       bool
	Copy      bool
	Paste     bool
	SelectAll bool
	Clear     bool
	Undo      bool
	Redo      bool
}

// Enabled returns the flag for a command. Unknown commands are
// disabled.
func (f Flags) Enabled(c Command) bool {
	switch c {
	case CommandCut:
		return f.Cut
	case CommandCopy:
		return f.Copy
	case CommandPaste:
		return f.Paste
	case CommandSelectAll:
		return f.SelectAll
	case CommandClear:
		return f.Clear
	case CommandUndo:
		return f.Undo
	case CommandRedo:
		return f.Redo
	default:
		return false
	}
}

// Item pairs a label with its command for host-rendered menus.
type Item struct {
	Label   string
	Command Command
}

// Items returns the menu items in display order.
func Items() []Item {
	items := make([]Item, 0, int(numCommands))
	for c := CommandCut; c < numCommands; c++ {
		items = append(items, Item{Label: c.String(), Command: c})
	}
	return items
}
