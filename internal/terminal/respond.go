package terminal

import (
	"fmt"
	"time"

	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/progress"
)

// Version affichée par la commande `version`
const Version = "3.0.0"

// Respond renvoie les lignes de sortie de la commande, personnalisées
// depuis l'état utilisateur. Projection en lecture seule : aucun effet
// de bord ici, les compteurs sont mis à jour par l'appelant.
func Respond(cmd Command, user *model.UserState, now time.Time) []string {
	switch cmd {
	case CommandHelp:
		return []string{
			"Available commands:",
			"  jobs      - Job hunt overview",
			"  savings   - Savings progress",
			"  tasks     - Task summary",
			"  stats     - Productivity stats",
			"  profile   - Your profile",
			"  pong      - Launch pong",
			"  coffee    - Brew a coffee",
			"  motivate  - A push in the right direction",
			"  time      - Current time",
			"  version   - Terminal version",
			"  whoami    - Who you are",
			"  clear     - Clear terminal",
		}
	case CommandJobs:
		return []string{
			"Opening job catalog...",
			"Tip: apply from the Jobs window, every application earns points.",
		}
	case CommandSavings:
		bonus := progress.StreakBonus(user.DailyStreak)
		pct := progress.SavingsProgress(user.CurrentSavings, user.SavingsGoal, user.DailyStreak)
		return []string{
			fmt.Sprintf("Savings: $%.2f / $%.2f", user.CurrentSavings, user.SavingsGoal),
			fmt.Sprintf("Streak bonus: $%.2f (%d day streak)", bonus, user.DailyStreak),
			fmt.Sprintf("Progress: %.1f%%", pct),
		}
	case CommandTasks:
		return []string{
			"Opening task board...",
			"Completing a task earns 20 points.",
		}
	case CommandStats:
		return []string{
			fmt.Sprintf("Productivity score: %d", user.ProductivityScore),
			fmt.Sprintf("Daily streak: %d day(s)", user.DailyStreak),
			fmt.Sprintf("Sessions: %d", user.TotalSessions),
			fmt.Sprintf("Achievements unlocked: %d", user.AchievementsUnlocked),
		}
	case CommandProfile:
		return []string{
			fmt.Sprintf("User: %s", user.Name),
			fmt.Sprintf("Member since: %s", user.CreatedAt.Format("2006-01-02")),
			fmt.Sprintf("Commands executed: %d", user.CommandsExecuted),
			fmt.Sprintf("Easter eggs found: %d", user.EasterEggsFound),
		}
	case CommandPong:
		return []string{
			"Launching pong...",
			fmt.Sprintf("High score to beat: %d", user.PongHighScore),
		}
	case CommandMatrix:
		return []string{
			"Wake up, Neo...",
			"01010100 01101000 01110010 01101001 01110110 01100101",
			"You found a hidden easter egg! +10 points",
		}
	case CommandKonami:
		return []string{
			"↑ ↑ ↓ ↓ ← → ← → B A",
			"KONAMI CODE ACTIVATED!",
			"You found the legendary easter egg! +50 points",
		}
	case CommandCoffee:
		return []string{
			"       ( (",
			"        ) )",
			"      ........",
			"      |      |]",
			"      \\      /",
			"       `----'",
			"Coffee is ready. Back to work!",
		}
	case CommandMotivate:
		return []string{
			fmt.Sprintf("%s, you are on a %d day streak.", user.Name, user.DailyStreak),
			"Every application, every task, every dollar saved counts.",
			"Keep going!",
		}
	case CommandSurprise:
		return []string{
			"🎉 Surprise! 🎉",
			"You found a hidden easter egg! +10 points",
		}
	case CommandTime:
		return []string{
			now.Format("Mon Jan 2 15:04:05 MST 2006"),
		}
	case CommandVersion:
		return []string{
			fmt.Sprintf("ThriveRemote Terminal v%s", Version),
		}
	case CommandWhoami:
		return []string{
			user.ID,
		}
	case CommandClear:
		return []string{}
	default:
		return []string{
			"Command not found",
			"Type 'help' for available commands",
		}
	}
}
