package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

type ForumDB struct {
	DB *sql.DB
}

// NewForumDB opens and pings a Postgres connection. An empty connStr falls
// back to the DATABASE_URL environment variable.
func NewForumDB(connStr string) (*ForumDB, error) {
	if connStr == "" {
		connStr = os.Getenv("DATABASE_URL")
	}
	if connStr == "" {
		log.Error().Msg("DATABASE_URL environment variable is not set")
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database connection")
		return nil, err
	}

	// Check we are actually connected
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("Database connection failed during ping")
		db.Close()
		return nil, err
	}

	return &ForumDB{DB: db}, nil
}

func (f *ForumDB) Close() error {
	if err := f.DB.Close(); err != nil {
		return err
	}
	log.Info().Msg("database connection closed")
	return nil
}

// Migrate applies every pending schema migration.
func (f *ForumDB) Migrate() error {
	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("error setting migration dialect: %w", err)
	}

	if err := goose.Up(f.DB, "migrations"); err != nil {
		return fmt.Errorf("error running migrations: %w", err)
	}

	log.Info().Msg("database migrations applied")
	return nil
}

// CommitTransaction commits tx, rolling it back if the commit fails.
func (f *ForumDB) CommitTransaction(tx *sql.Tx) error {
	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

func (f *ForumDB) execQuery(tx *sql.Tx, query string, args ...interface{}) (int64, error) {

	if f.DB == nil {
		return 0, fmt.Errorf("database connection is not established")
	}

	res, err := tx.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected, nil
}
