package utils

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/database"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/logger"
	model "github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/models"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/progress"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, created_at, last_active, total_sessions,
	productivity_score, daily_streak, last_streak_date, savings_goal,
	current_savings, commands_executed, easter_eggs_found, pong_high_score,
	achievements_unlocked, settings`

// GetOrCreateUser résout un utilisateur par identifiant, le crée au
// premier accès, et applique la transition de streak journalière.
// Appelée une fois par requête entrante ; idempotente dans la journée.
func GetOrCreateUser(ctx context.Context, userID string) (*model.UserState, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}

	user, err := FindUserByID(ctx, userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return createUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	return touchUser(ctx, user)
}

// FindUserByID recherche un utilisateur sans effet de bord
func FindUserByID(ctx context.Context, userID string) (*model.UserState, error) {
	row := database.DB.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, userID)
	return scanUserRow(row)
}

// scanUserRow scanne une ligne users avec conversion des colonnes NULL
func scanUserRow(row pgx.Row) (*model.UserState, error) {
	var user model.UserState
	var lastStreakDate sql.NullTime

	err := row.Scan(
		&user.ID, &user.Name, &user.CreatedAt, &user.LastActive,
		&user.TotalSessions, &user.ProductivityScore, &user.DailyStreak,
		&lastStreakDate, &user.SavingsGoal, &user.CurrentSavings,
		&user.CommandsExecuted, &user.EasterEggsFound, &user.PongHighScore,
		&user.AchievementsUnlocked, &user.Settings,
	)
	if err != nil {
		return nil, err
	}

	user.LastStreakDate = NullTimeToPointer(lastStreakDate)

	return &user, nil
}

// createUser sème un nouvel utilisateur : streak=1, session=1, la date
// du jour comme dernier incrément, les 8 achievements verrouillés et
// quelques tasks de démarrage
func createUser(ctx context.Context, userID string) (*model.UserState, error) {
	now := time.Now()
	today := progress.DateOnly(now)

	row := database.DB.QueryRow(ctx,
		`INSERT INTO users(id, name, created_at, last_active, total_sessions,
			daily_streak, last_streak_date)
		 VALUES($1, $2, $3, $3, 1, 1, $4)
		 RETURNING `+userColumns,
		userID, userID, now, today,
	)

	user, err := scanUserRow(row)
	if err != nil {
		return nil, fmt.Errorf("impossible de créer l'utilisateur: %w", err)
	}

	if err := SeedAchievements(ctx, userID); err != nil {
		return nil, err
	}
	if err := seedDefaultTasks(ctx, userID, now); err != nil {
		return nil, err
	}

	logger.Success("New user created: %s", userID)
	return user, nil
}

// touchUser applique la transition de streak (§ règle calendaire) et met
// à jour last_active. La branche advance/reset est conditionnée sur la
// valeur lue de last_streak_date pour éviter qu'une requête concurrente
// compte deux fois le même jour.
func touchUser(ctx context.Context, user *model.UserState) (*model.UserState, error) {
	now := time.Now()
	today := progress.DateOnly(now)

	switch progress.ResolveStreak(user.LastStreakDate, now) {
	case progress.StreakHold:
		_, err := database.DB.Exec(ctx,
			`UPDATE users SET last_active=$2 WHERE id=$1`, user.ID, now)
		if err != nil {
			return nil, err
		}

	case progress.StreakAdvance:
		tag, err := database.DB.Exec(ctx,
			`UPDATE users SET daily_streak = daily_streak + 1,
				last_streak_date=$2, total_sessions = total_sessions + 1,
				last_active=$3
			 WHERE id=$1 AND last_streak_date=$4`,
			user.ID, today, now, progress.DateOnly(*user.LastStreakDate))
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			// Une requête concurrente a déjà fait la transition
			_, err = database.DB.Exec(ctx,
				`UPDATE users SET last_active=$2 WHERE id=$1`, user.ID, now)
			if err != nil {
				return nil, err
			}
		}

	case progress.StreakReset:
		tag, err := database.DB.Exec(ctx,
			`UPDATE users SET daily_streak = 1, last_streak_date=$2,
				total_sessions = total_sessions + 1, last_active=$3
			 WHERE id=$1 AND last_streak_date IS NOT DISTINCT FROM $4`,
			user.ID, today, now, user.LastStreakDate)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			_, err = database.DB.Exec(ctx,
				`UPDATE users SET last_active=$2 WHERE id=$1`, user.ID, now)
			if err != nil {
				return nil, err
			}
		}
	}

	// Relire l'état après transition pour renvoyer des valeurs fraîches
	return FindUserByID(ctx, user.ID)
}

// seedDefaultTasks crée les tasks de démarrage d'un nouvel utilisateur
func seedDefaultTasks(ctx context.Context, userID string, now time.Time) error {
	starters := []struct {
		title, description, priority, category string
	}{
		{"Update Resume", "Add recent project experience and skills", model.TaskPriorityHigh, "job_search"},
		{"Review Budget", "Analyze monthly expenses and optimize savings", model.TaskPriorityMedium, "finance"},
		{"Learn a New Skill", "Pick one skill from a job listing and start a course", model.TaskPriorityMedium, "skill_development"},
	}

	for _, s := range starters {
		_, err := database.DB.Exec(ctx,
			`INSERT INTO tasks(id, user_id, title, description, status, priority, category, created_at)
			 VALUES($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.NewString(), userID, s.title, s.description,
			model.TaskStatusTodo, s.priority, s.category, now,
		)
		if err != nil {
			return fmt.Errorf("impossible de semer les tasks par défaut: %w", err)
		}
	}

	return nil
}
