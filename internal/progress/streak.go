package progress

import (
	"time"
)

// StreakOutcome est le résultat de la transition de streak journalière
type StreakOutcome int

const (
	// StreakHold : déjà comptée aujourd'hui, aucun changement
	StreakHold StreakOutcome = iota
	// StreakAdvance : exactement un jour calendaire après la dernière, +1
	StreakAdvance
	// StreakReset : tout autre écart (absent, trop ancien, ou dans le futur), retour à 1
	StreakReset
)

func (o StreakOutcome) String() string {
	switch o {
	case StreakHold:
		return "hold"
	case StreakAdvance:
		return "advance"
	case StreakReset:
		return "reset"
	default:
		return "unknown"
	}
}

// DateOnly tronque un instant à son jour calendaire en UTC
func DateOnly(t time.Time) time.Time {
	return time.Date(t.UTC().Year(), t.UTC().Month(), t.UTC().Day(), 0, 0, 0, 0, time.UTC)
}

// ResolveStreak compare le jour courant à la date du dernier incrément
// et décide de la transition. La règle est purement calendaire :
//   - même jour → hold
//   - exactement J+1 → advance
//   - tout le reste (nil, écart > 1 jour, horloge dans le passé) → reset
func ResolveStreak(lastStreakDate *time.Time, now time.Time) StreakOutcome {
	if lastStreakDate == nil {
		return StreakReset
	}

	today := DateOnly(now)
	last := DateOnly(*lastStreakDate)

	switch {
	case last.Equal(today):
		return StreakHold
	case last.AddDate(0, 0, 1).Equal(today):
		return StreakAdvance
	default:
		return StreakReset
	}
}
