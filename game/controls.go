package game

import (
	"errors"
	"fmt"
	"strings"

	"snake-classic/game/types"
)

// ErrUnknownCommand is returned by Apply for a Command it does not define.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a control surface action.
type Command int

const (
	CommandStart Command = iota
	CommandPause
	CommandReset
	CommandEasy
	CommandMedium
	CommandHard
	CommandExpert
)

var commandKeys = map[string]Command{
	"enter": CommandStart,
	" ":     CommandStart,
	"p":     CommandPause,
	"r":     CommandReset,
	"1":     CommandEasy,
	"2":     CommandMedium,
	"3":     CommandHard,
	"4":     CommandExpert,
}

// CommandForKey resolves a control key name, case-insensitively.
func CommandForKey(key string) (Command, bool) {
	cmd, ok := commandKeys[strings.ToLower(key)]
	return cmd, ok
}

// Apply runs a control command. Starting a finished game resets it first.
func (g *Game) Apply(cmd Command) error {
	switch cmd {
	case CommandStart:
		if g.state == Over {
			g.Reset()
		}
		return g.Start()
	case CommandPause:
		return g.TogglePause()
	case CommandReset:
		g.Reset()
		return nil
	case CommandEasy:
		return g.SetDifficulty(types.Easy)
	case CommandMedium:
		return g.SetDifficulty(types.Medium)
	case CommandHard:
		return g.SetDifficulty(types.Hard)
	case CommandExpert:
		return g.SetDifficulty(types.Expert)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownCommand, int(cmd))
	}
}

// Press routes a key name to a command or a steering intent.
func (g *Game) Press(key string) error {
	if cmd, ok := CommandForKey(key); ok {
		return g.Apply(cmd)
	}
	g.HandleKey(key)
	return nil
}
