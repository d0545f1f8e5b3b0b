package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Open connects to Postgres with the given URL and verifies the connection.
func Open(dbURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Migrate creates the schema if it does not exist. Deleting an event cascades
// to its sessions, participants, and budget items.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			email         TEXT NOT NULL UNIQUE,
			full_name     TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			salt          TEXT NOT NULL,
			is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id           BIGSERIAL PRIMARY KEY,
			title        TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			start_date   TIMESTAMPTZ NOT NULL,
			end_date     TIMESTAMPTZ NOT NULL,
			location     TEXT NOT NULL DEFAULT '',
			organizer_id BIGINT NOT NULL REFERENCES users(id),
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT events_date_order CHECK (end_date >= start_date)
		)`,
		`CREATE TABLE IF NOT EXISTS speakers (
			id           BIGSERIAL PRIMARY KEY,
			name         TEXT NOT NULL,
			bio          TEXT NOT NULL DEFAULT '',
			contact_info TEXT NOT NULL DEFAULT '',
			created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id          BIGSERIAL PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			start_time  TIMESTAMPTZ NOT NULL,
			end_time    TIMESTAMPTZ NOT NULL,
			event_id    BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			speaker_id  BIGINT NOT NULL REFERENCES speakers(id),
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT sessions_time_order CHECK (end_time >= start_time)
		)`,
		`CREATE TABLE IF NOT EXISTS participants (
			id                BIGSERIAL PRIMARY KEY,
			name              TEXT NOT NULL,
			email             TEXT NOT NULL,
			registration_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			payment_status    BOOLEAN NOT NULL DEFAULT FALSE,
			event_id          BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			user_id           BIGINT REFERENCES users(id),
			created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS budget_items (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			amount     DOUBLE PRECISION NOT NULL CHECK (amount > 0),
			category   TEXT NOT NULL DEFAULT '',
			is_expense BOOLEAN NOT NULL DEFAULT TRUE,
			event_id   BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation,
// optionally on the named constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != "23505" {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
