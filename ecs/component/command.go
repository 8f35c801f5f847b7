package component

type CommandKind uint8

const (
	CommandNone CommandKind = iota
	CommandSwitchDimension
	CommandFire
)

func (k CommandKind) String() string {
	switch k {
	case CommandSwitchDimension:
		return "switch_dimension"
	case CommandFire:
		return "fire"
	default:
		return "none"
	}
}

// Command is what a finished gesture asks the game to do. Dimension is only
// meaningful for CommandSwitchDimension; Fire always leaves from the player.
type Command struct {
	Kind      CommandKind
	Dimension Dimension
}

func SwitchTo(d Dimension) Command {
	return Command{Kind: CommandSwitchDimension, Dimension: d}
}

func Fire() Command {
	return Command{Kind: CommandFire}
}
