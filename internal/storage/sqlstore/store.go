package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/mcoot/playerroster/internal/model"
	"github.com/mcoot/playerroster/internal/storage"
	"github.com/mcoot/playerroster/internal/storage/sqlstore/migrations"
)

const playerColumns = "id, name, title, race, profession, birthday, banned, experience, level, until_next_level"

// PoolConfig tunes the database/sql connection pool
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Store is a database/sql implementation of the storage interface
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// Ensure Store implements the interface
var _ storage.Storage = (*Store)(nil)

// OpenSQLite opens a SQLite database at the provided path and applies the schema.
// ":memory:" gives a private in-memory database.
func OpenSQLite(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}

	dsn := ":memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	}
	db, err := sql.Open(SQLite.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	// Every new connection to :memory: would be a fresh database
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	return open(db, SQLite)
}

// OpenPostgres connects to Postgres through the pgx database/sql driver and applies the schema
func OpenPostgres(dsn string, pool PoolConfig) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres dsn is required")
	}

	db, err := sql.Open(Postgres.DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres store: %w", err)
	}
	if pool.MaxOpenConns > 0 {
		db.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		db.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}

	return open(db, Postgres)
}

func open(db *sql.DB, d Dialect) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s store: %w", d.Name, err)
	}

	if err := applyMigrations(ctx, db, d, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply %s migrations: %w", d.Name, err)
	}

	return &Store{db: db, dialect: d}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) FindAll(ctx context.Context) ([]*model.Player, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+playerColumns+" FROM players ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := make([]*model.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (s *Store) FindByID(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	row := s.db.QueryRowContext(ctx,
		s.dialect.Rebind("SELECT "+playerColumns+" FROM players WHERE id = ?"), int64(id))
	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return player, nil
}

func (s *Store) Save(ctx context.Context, player *model.Player) error {
	if player.ID == 0 {
		var id int64
		err := s.db.QueryRowContext(ctx, s.dialect.Rebind(`
INSERT INTO players (name, title, race, profession, birthday, banned, experience, level, until_next_level)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id`),
			player.Name, player.Title, string(player.Race), string(player.Profession),
			player.Birthday.UnixMilli(), player.Banned,
			player.Experience, player.Level, player.UntilNextLevel,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("failed to insert player: %w", err)
		}
		player.ID = model.PlayerID(id)
		return nil
	}

	res, err := s.db.ExecContext(ctx, s.dialect.Rebind(`
UPDATE players
SET name = ?, title = ?, race = ?, profession = ?, birthday = ?, banned = ?,
    experience = ?, level = ?, until_next_level = ?
WHERE id = ?`),
		player.Name, player.Title, string(player.Race), string(player.Profession),
		player.Birthday.UnixMilli(), player.Banned,
		player.Experience, player.Level, player.UntilNextLevel,
		int64(player.ID),
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}
	if updated > 0 {
		return nil
	}

	// Saving with an id that has no row yet keeps the caller's id
	return s.insertWithID(ctx, player)
}

func (s *Store) insertWithID(ctx context.Context, player *model.Player) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, s.dialect.Rebind(`
INSERT INTO players (`+playerColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		int64(player.ID), player.Name, player.Title, string(player.Race), string(player.Profession),
		player.Birthday.UnixMilli(), player.Banned,
		player.Experience, player.Level, player.UntilNextLevel,
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}

	if s.dialect.syncSequence != "" {
		if _, err := tx.ExecContext(ctx, s.dialect.syncSequence); err != nil {
			return fmt.Errorf("failed to advance player id sequence: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Store) Delete(ctx context.Context, id model.PlayerID) error {
	res, err := s.db.ExecContext(ctx, s.dialect.Rebind("DELETE FROM players WHERE id = ?"), int64(id))
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	if deleted == 0 {
		return model.ErrPlayerNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*model.Player, error) {
	var (
		id, birthday     int64
		race, profession string
		player           model.Player
	)
	if err := row.Scan(
		&id, &player.Name, &player.Title, &race, &profession, &birthday,
		&player.Banned, &player.Experience, &player.Level, &player.UntilNextLevel,
	); err != nil {
		return nil, err
	}
	player.ID = model.PlayerID(id)
	player.Race = model.Race(race)
	player.Profession = model.Profession(profession)
	player.Birthday = time.UnixMilli(birthday).UTC()
	return &player, nil
}
