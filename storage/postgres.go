package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Yapcheekian/shortcode/models"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
)

const (
	insertURL = "INSERT INTO url_mappings (id, short_code, original_url) VALUES ($1, $2, $3) ON CONFLICT (short_code) DO NOTHING RETURNING created_at"
	selectURL = "SELECT id, short_code, original_url, created_at FROM url_mappings WHERE short_code = $1"
)

type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

// Connect opens a pool to dsn and verifies it with a ping.
func Connect(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return db, nil
}

// Migrate applies every pending migration found in dir.
func Migrate(db *sql.DB, dir string) (int, error) {
	migrations := &migrate.FileMigrationSource{
		Dir: dir,
	}

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("apply migrations: %w", err)
	}

	return n, nil
}

// Create inserts url unless its short code is already present and fills in
// the creation time assigned by the database.
func (p *Postgres) Create(ctx context.Context, url *models.URL) error {
	err := p.db.QueryRowxContext(ctx, insertURL, url.ID, url.ShortCode, url.OriginalURL).Scan(&url.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCodeTaken
	}
	if err != nil {
		return fmt.Errorf("insert mapping: %w", err)
	}

	return nil
}

func (p *Postgres) GetByCode(ctx context.Context, code string) (models.URL, error) {
	var url models.URL

	if err := p.db.GetContext(ctx, &url, selectURL, code); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return url, ErrNotFound
		}
		return url, fmt.Errorf("select mapping: %w", err)
	}

	return url, nil
}
