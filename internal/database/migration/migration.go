// Package migration brings an empty database up to the schema the API expects.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Fixed ids for the seeded difficulties so clients can reference them across environments.
const (
	DifficultyEasyID   = "54466f17-02af-48e7-8ed3-5a4a8bfacf6f"
	DifficultyMediumID = "ea294873-7a8c-4c0f-bfa7-a2eb492cbf8c"
	DifficultyHardID   = "f808ddcd-b5e5-4d80-b732-1ca523e48434"
)

var steps = []migrationStep{
	{
		Name: "create_extension_pgcrypto",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	},
	{
		Name: "create_table_difficulties",
		SQL: `CREATE TABLE IF NOT EXISTS difficulties (
  id         UUID        PRIMARY KEY DEFAULT gen_random_uuid(),
  name       TEXT        NOT NULL UNIQUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "seed_difficulties",
		SQL: fmt.Sprintf(`INSERT INTO difficulties (id, name) VALUES
  ('%s', 'Easy'),
  ('%s', 'Medium'),
  ('%s', 'Hard')
ON CONFLICT (id) DO NOTHING;`, DifficultyEasyID, DifficultyMediumID, DifficultyHardID),
	},
	{
		Name: "create_table_regions",
		SQL: `CREATE TABLE IF NOT EXISTS regions (
  id               UUID         PRIMARY KEY,
  code             VARCHAR(3)   NOT NULL,
  name             VARCHAR(100) NOT NULL,
  region_image_url TEXT,
  created_at       TIMESTAMPTZ  NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_walks",
		SQL: `CREATE TABLE IF NOT EXISTS walks (
  id             UUID          PRIMARY KEY,
  name           VARCHAR(100)  NOT NULL,
  description    VARCHAR(1000) NOT NULL,
  length_in_km   DOUBLE PRECISION NOT NULL,
  walk_image_url TEXT,
  difficulty_id  UUID          NOT NULL REFERENCES difficulties (id),
  region_id      UUID          NOT NULL REFERENCES regions (id),
  created_at     TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_walks_region_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_walks_region_id ON walks (region_id);`,
	},
	{
		Name: "create_index_walks_difficulty_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_walks_difficulty_id ON walks (difficulty_id);`,
	},
	{
		Name: "create_index_walks_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_walks_created_at ON walks (created_at, id);`,
	},
	{
		Name: "create_index_regions_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_regions_created_at ON regions (created_at, id);`,
	},
	{
		Name: "create_table_images",
		SQL: `CREATE TABLE IF NOT EXISTS images (
  id                 UUID        PRIMARY KEY,
  file_name          TEXT        NOT NULL,
  file_description   TEXT,
  file_extension     TEXT        NOT NULL,
  file_size_in_bytes BIGINT      NOT NULL CHECK (file_size_in_bytes >= 0),
  file_path          TEXT        NOT NULL UNIQUE,
  thumbnail_path     TEXT        NOT NULL,
  content_type       TEXT        NOT NULL,
  created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
}

// sentinelTable is created by the last step, so it only exists once every
// earlier step has succeeded.
const sentinelTable = "images"

// EnsureMigrated runs every step when the sentinel table is missing. Steps are
// idempotent, so a partially applied schema is completed on the next start.
func EnsureMigrated(ctx context.Context, db *sql.DB, logger zerolog.Logger, dbHost string) error {
	start := time.Now()
	l := logger.With().Str("component", "database").Str("db_host", dbHost).Logger()

	l.Info().Str("event", "db_migration_check").Str("status", "starting").Send()

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass('public.'||$1) IS NOT NULL", sentinelTable).Scan(&exists)
	if err != nil {
		l.Error().Err(err).
			Str("event", "db_migration_failed").
			Str("status", "error").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		l.Info().
			Str("event", "db_migration_skip").
			Str("status", "success").
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("schema already exists, skipping migration")
		return nil
	}

	l.Info().Str("event", "db_migration_start").Str("status", "in_progress").Send()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			l.Error().Err(err).
				Str("event", "db_migration_failed").
				Str("status", "error").
				Str("migration_step", step.Name).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
				Send()
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		l.Info().
			Str("event", "db_migration_step").
			Str("status", "success").
			Str("migration_step", step.Name).
			Int64("step_duration_ms", time.Since(stepStart).Milliseconds()).
			Send()
	}

	l.Info().
		Str("event", "db_migration_success").
		Str("status", "success").
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Send()

	return nil
}
