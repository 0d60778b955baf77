package terminal

import (
	"strings"
)

// Command est le type fermé des commandes du terminal. Le dispatch se
// fait par switch exhaustif avec un cas d'échec explicite, pas par map
// ouverte de strings.
type Command int

const (
	CommandUnknown Command = iota
	CommandHelp
	CommandJobs
	CommandSavings
	CommandTasks
	CommandStats
	CommandProfile
	CommandPong
	CommandMatrix
	CommandKonami
	CommandCoffee
	CommandMotivate
	CommandSurprise
	CommandTime
	CommandVersion
	CommandWhoami
	CommandClear
)

// Parse normalise la commande brute (minuscules, espaces retirés) et la
// résout dans le catalogue fermé. Tout ce qui n'y figure pas donne
// CommandUnknown.
func Parse(raw string) Command {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "help":
		return CommandHelp
	case "jobs":
		return CommandJobs
	case "savings":
		return CommandSavings
	case "tasks":
		return CommandTasks
	case "stats":
		return CommandStats
	case "profile":
		return CommandProfile
	case "pong":
		return CommandPong
	case "matrix":
		return CommandMatrix
	case "konami":
		return CommandKonami
	case "coffee":
		return CommandCoffee
	case "motivate":
		return CommandMotivate
	case "surprise":
		return CommandSurprise
	case "time":
		return CommandTime
	case "version":
		return CommandVersion
	case "whoami":
		return CommandWhoami
	case "clear":
		return CommandClear
	default:
		return CommandUnknown
	}
}

// Name renvoie le nom canonique de la commande
func (c Command) Name() string {
	switch c {
	case CommandHelp:
		return "help"
	case CommandJobs:
		return "jobs"
	case CommandSavings:
		return "savings"
	case CommandTasks:
		return "tasks"
	case CommandStats:
		return "stats"
	case CommandProfile:
		return "profile"
	case CommandPong:
		return "pong"
	case CommandMatrix:
		return "matrix"
	case CommandKonami:
		return "konami"
	case CommandCoffee:
		return "coffee"
	case CommandMotivate:
		return "motivate"
	case CommandSurprise:
		return "surprise"
	case CommandTime:
		return "time"
	case CommandVersion:
		return "version"
	case CommandWhoami:
		return "whoami"
	case CommandClear:
		return "clear"
	default:
		return "unknown"
	}
}

// EasterEggPoints renvoie le bonus d'easter egg de la commande, 0 si
// la commande n'en cache pas. Seules konami, matrix et surprise en ont.
func (c Command) EasterEggPoints() int {
	switch c {
	case CommandKonami:
		return 50
	case CommandMatrix, CommandSurprise:
		return 10
	default:
		return 0
	}
}

// IsEasterEgg indique si la commande incrémente le compteur d'easter eggs
func (c Command) IsEasterEgg() bool {
	return c.EasterEggPoints() > 0
}
