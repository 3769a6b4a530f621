package core

// Command is one of the semantic inputs a player can send to a session.
// Drivers translate raw key presses into commands.
type Command int

const (
	CommandNone Command = iota
	CommandTurnUp
	CommandTurnDown
	CommandTurnLeft
	CommandTurnRight
	CommandTogglePause
	CommandScoreboard // driver-level: open the scoreboard
	CommandQuit       // driver-level: leave the game
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandTurnUp:
		return "TurnUp"
	case CommandTurnDown:
		return "TurnDown"
	case CommandTurnLeft:
		return "TurnLeft"
	case CommandTurnRight:
		return "TurnRight"
	case CommandTogglePause:
		return "TogglePause"
	case CommandScoreboard:
		return "Scoreboard"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the heading carried by a turn command.
// ok is false for commands that are not turns.
func (c Command) Direction() (d Direction, ok bool) {
	switch c {
	case CommandTurnUp:
		return Up, true
	case CommandTurnDown:
		return Down, true
	case CommandTurnLeft:
		return Left, true
	case CommandTurnRight:
		return Right, true
	}
	return Up, false
}

// TurnCommand returns the turn command for a direction.
func TurnCommand(d Direction) Command {
	switch d {
	case Up:
		return CommandTurnUp
	case Down:
		return CommandTurnDown
	case Left:
		return CommandTurnLeft
	case Right:
		return CommandTurnRight
	}
	return CommandNone
}
