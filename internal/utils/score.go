package utils

import (
	"context"
	"fmt"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// scoreExecutor est la surface minimale dont l'écriture du score a
// besoin (pgx.Tx la satisfait)
type scoreExecutor interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// AwardPoints journalise une action scorée et incrémente le score de
// l'utilisateur. Les deux écritures partagent une transaction : le
// score reste égal à la somme des entrées du journal, même si la
// deuxième écriture échoue. L'incrément est fait en une seule
// opération SQL (score = score + delta), jamais en lecture puis
// écriture, pour que deux actions concurrentes ne se perdent pas.
func AwardPoints(ctx context.Context, userID, action string, points int, metadata map[string]interface{}) error {
	tx, err := database.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("impossible d'ouvrir la transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := awardPointsTx(ctx, tx, userID, action, points, metadata); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func awardPointsTx(ctx context.Context, tx scoreExecutor, userID, action string, points int, metadata map[string]interface{}) error {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}

	_, err := tx.Exec(ctx,
		`INSERT INTO productivity_log(id, user_id, action, points, metadata, created_at)
		 VALUES($1, $2, $3, $4, $5, NOW())`,
		uuid.NewString(), userID, action, points, metadata,
	)
	if err != nil {
		return fmt.Errorf("impossible de journaliser l'action %s: %w", action, err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE users SET productivity_score = productivity_score + $1 WHERE id = $2`,
		points, userID,
	)
	if err != nil {
		return fmt.Errorf("impossible d'incrémenter le score: %w", err)
	}

	return nil
}
