package utils

import (
	"context"
	"fmt"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/database"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/logger"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/progress"
	"github.com/google/uuid"
)

// UnlockResult est le résultat trichotomique d'une tentative de déblocage
type UnlockResult int

const (
	// UnlockDone : transition faite, bonus accordé
	UnlockDone UnlockResult = iota
	// UnlockAlready : déjà débloqué, no-op
	UnlockAlready
	// UnlockNotFound : kind inconnu pour cet utilisateur, no-op
	UnlockNotFound
)

// SeedAchievements insère le catalogue complet, verrouillé, pour un
// nouvel utilisateur. ON CONFLICT protège contre un double semis.
func SeedAchievements(ctx context.Context, userID string) error {
	for _, def := range progress.AchievementCatalog {
		_, err := database.DB.Exec(ctx,
			`INSERT INTO achievements(id, user_id, kind, title, description, icon, unlocked)
			 VALUES($1, $2, $3, $4, $5, $6, FALSE)
			 ON CONFLICT (user_id, kind) DO NOTHING`,
			uuid.NewString(), userID, def.Kind, def.Title, def.Description, def.Icon,
		)
		if err != nil {
			return fmt.Errorf("impossible de semer l'achievement %s: %w", def.Kind, err)
		}
	}
	return nil
}

// TryUnlockAchievement passe l'achievement de verrouillé à débloqué si
// et seulement s'il est encore verrouillé. La garde est dans le WHERE,
// donc la transition n'arrive qu'une fois même sous concurrence ; le
// bonus de 50 points n'est accordé que si la ligne a bougé.
func TryUnlockAchievement(ctx context.Context, userID, kind string) (UnlockResult, error) {
	tag, err := database.DB.Exec(ctx,
		`UPDATE achievements SET unlocked=TRUE, unlocked_at=NOW()
		 WHERE user_id=$1 AND kind=$2 AND unlocked=FALSE`,
		userID, kind,
	)
	if err != nil {
		return UnlockNotFound, fmt.Errorf("impossible de débloquer %s: %w", kind, err)
	}

	if tag.RowsAffected() == 0 {
		// Distinguer "déjà débloqué" de "kind inconnu"
		var exists bool
		err := database.DB.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM achievements WHERE user_id=$1 AND kind=$2)`,
			userID, kind,
		).Scan(&exists)
		if err != nil {
			return UnlockNotFound, err
		}
		if exists {
			return UnlockAlready, nil
		}
		return UnlockNotFound, nil
	}

	if err := AwardPoints(ctx, userID, progress.ActionAchievementUnlock,
		progress.PointsAchievementUnlock, map[string]interface{}{"achievement": kind}); err != nil {
		return UnlockDone, err
	}

	_, err = database.DB.Exec(ctx,
		`UPDATE users SET achievements_unlocked = achievements_unlocked + 1 WHERE id=$1`,
		userID,
	)
	if err != nil {
		return UnlockDone, err
	}

	logger.Success("Achievement unlocked for %s: %s", userID, kind)
	return UnlockDone, nil
}

// CountUserApplications compte les candidatures d'un utilisateur
func CountUserApplications(ctx context.Context, userID string) (int, error) {
	var count int
	err := database.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE user_id=$1`, userID).Scan(&count)
	return count, err
}

// CountCompletedTasks compte les tasks complétées d'un utilisateur
func CountCompletedTasks(ctx context.Context, userID string) (int, error) {
	var count int
	err := database.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks WHERE user_id=$1 AND status=$2`,
		userID, "completed").Scan(&count)
	return count, err
}
