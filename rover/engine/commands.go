package engine

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Command tokens. Matching is case-sensitive.
const (
	CmdForward  = "f"
	CmdBackward = "b"
	CmdLeft     = "l"
	CmdRight    = "r"
)

// CommandKind names the alphabet a batch is interpreted with
type CommandKind string

const (
	KindMove    CommandKind = "move"
	KindTurn    CommandKind = "turn"
	KindExecute CommandKind = "execute"
)

func (k CommandKind) accepts(token string) bool {
	switch k {
	case KindMove:
		return token == CmdForward || token == CmdBackward
	case KindTurn:
		return token == CmdLeft || token == CmdRight
	case KindExecute:
		return token == CmdForward || token == CmdBackward || token == CmdLeft || token == CmdRight
	}
	return false
}

func (k CommandKind) alphabet() string {
	switch k {
	case KindMove:
		return "f, b"
	case KindTurn:
		return "l, r"
	default:
		return "f, b, l, r"
	}
}

// Commands is an ordered batch of single-letter command tokens
type Commands []string

// Split tokenizes a command string into single-character commands
func Split(s string) Commands {
	cmds := make(Commands, 0, len(s))
	for _, r := range s {
		cmds = append(cmds, string(r))
	}
	return cmds
}

// String joins the batch back into a command string
func (c Commands) String() string {
	return strings.Join(c, "")
}

// UnmarshalJSON accepts either a string ("ffb") or a list (["f","f","b"])
func (c *Commands) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Split(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("commands must be a string or a list of strings: %w", err)
	}
	*c = Commands(list)
	return nil
}
