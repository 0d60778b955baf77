package database

import (
	"context"
	"fmt"
)

// InitSchema crée les tables si elles n'existent pas encore.
// Une table par type d'entité : users, jobs, applications, tasks,
// achievements, productivity_log.
func InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id                    TEXT PRIMARY KEY,
			name                  TEXT NOT NULL,
			created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			last_active           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			total_sessions        INTEGER NOT NULL DEFAULT 1,
			productivity_score    INTEGER NOT NULL DEFAULT 0,
			daily_streak          INTEGER NOT NULL DEFAULT 1,
			last_streak_date      DATE,
			savings_goal          DOUBLE PRECISION NOT NULL DEFAULT 5000.00,
			current_savings       DOUBLE PRECISION NOT NULL DEFAULT 0.00,
			commands_executed     INTEGER NOT NULL DEFAULT 0,
			easter_eggs_found     INTEGER NOT NULL DEFAULT 0,
			pong_high_score       INTEGER NOT NULL DEFAULT 0,
			achievements_unlocked INTEGER NOT NULL DEFAULT 0,
			settings              JSONB NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id                  TEXT PRIMARY KEY,
			title               TEXT NOT NULL,
			company             TEXT NOT NULL,
			location            TEXT NOT NULL DEFAULT 'Remote',
			salary              TEXT NOT NULL DEFAULT 'Competitive',
			type                TEXT NOT NULL DEFAULT 'Full-time',
			description         TEXT NOT NULL DEFAULT '',
			skills              TEXT[] NOT NULL DEFAULT '{}',
			posted_date         TEXT NOT NULL DEFAULT '',
			application_status  TEXT NOT NULL DEFAULT 'not_applied',
			source              TEXT NOT NULL DEFAULT 'static',
			url                 TEXT,
			created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id             TEXT PRIMARY KEY,
			user_id        TEXT NOT NULL,
			job_id         TEXT NOT NULL,
			job_title      TEXT NOT NULL,
			company        TEXT NOT NULL,
			status         TEXT NOT NULL DEFAULT 'applied',
			applied_date   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			follow_up_date TEXT,
			notes          TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id           TEXT PRIMARY KEY,
			user_id      TEXT NOT NULL,
			title        TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			status       TEXT NOT NULL DEFAULT 'todo',
			priority     TEXT NOT NULL DEFAULT 'medium',
			category     TEXT NOT NULL DEFAULT 'general',
			due_date     TEXT,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id          TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL,
			kind        TEXT NOT NULL,
			title       TEXT NOT NULL,
			description TEXT NOT NULL,
			icon        TEXT NOT NULL,
			unlocked    BOOLEAN NOT NULL DEFAULT FALSE,
			unlocked_at TIMESTAMPTZ,
			UNIQUE (user_id, kind)
		)`,
		`CREATE TABLE IF NOT EXISTS productivity_log (
			id         TEXT PRIMARY KEY,
			user_id    TEXT NOT NULL,
			action     TEXT NOT NULL,
			points     INTEGER NOT NULL,
			metadata   JSONB NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_user ON applications(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_achievements_user ON achievements(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_productivity_log_user ON productivity_log(user_id)`,
	}

	for _, stmt := range statements {
		if _, err := DB.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema init failed: %w", err)
		}
	}

	return nil
}
