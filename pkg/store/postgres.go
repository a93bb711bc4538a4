package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kass/go-school-locator/pkg/config"
	"github.com/kass/go-school-locator/pkg/models"
	"github.com/lib/pq"
)

const (
	createSchoolsTable = `CREATE TABLE IF NOT EXISTS schools (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL CHECK (latitude BETWEEN -90 AND 90),
		longitude DOUBLE PRECISION NOT NULL CHECK (longitude BETWEEN -180 AND 180),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);`

	insertSchool = `INSERT INTO schools (name, address, latitude, longitude)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	selectSchools = `SELECT id, name, address, latitude, longitude, created_at
		FROM schools
		ORDER BY id`

	countSchools = `SELECT COUNT(*) FROM schools`
)

// PostgresStore keeps schools in a PostgreSQL table through lib/pq
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection pool and verifies it with a ping
func NewPostgresStore(ctx context.Context, cfg config.DatabaseConfig) (*PostgresStore, error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return NewPostgresStoreFromDB(db), nil
}

// NewPostgresStoreFromDB wraps an already opened pool
func NewPostgresStoreFromDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the schools table
func (p *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, createSchoolsTable); err != nil {
		return opError("migrate", describe(err))
	}
	return nil
}

// Insert adds a school and returns the ID assigned by the sequence
func (p *PostgresStore) Insert(ctx context.Context, s models.NewSchool) (int64, error) {
	var id int64
	err := p.db.QueryRowContext(ctx, insertSchool, s.Name, s.Address, s.Latitude, s.Longitude).Scan(&id)
	if err != nil {
		return 0, opError("insert", describe(err))
	}
	return id, nil
}

// ListAll returns all schools ordered by ID
func (p *PostgresStore) ListAll(ctx context.Context) ([]models.School, error) {
	rows, err := p.db.QueryContext(ctx, selectSchools)
	if err != nil {
		return nil, opError("list", describe(err))
	}
	defer rows.Close()

	schools := make([]models.School, 0)
	for rows.Next() {
		var s models.School
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Latitude, &s.Longitude, &s.CreatedAt); err != nil {
			return nil, opError("list", fmt.Errorf("failed to scan row: %w", err))
		}
		schools = append(schools, s)
	}

	if err := rows.Err(); err != nil {
		return nil, opError("list", fmt.Errorf("rows error: %w", err))
	}

	return schools, nil
}

// Count returns the number of stored schools
func (p *PostgresStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.db.QueryRowContext(ctx, countSchools).Scan(&count); err != nil {
		return 0, opError("count", describe(err))
	}
	return count, nil
}

// Close closes the connection pool
func (p *PostgresStore) Close() error {
	return p.db.Close()
}

// describe adds the SQLSTATE to server-side errors so operators can tell a
// constraint violation from a connectivity problem
func describe(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("%s (sqlstate %s): %w", pqErr.Code.Name(), pqErr.Code, err)
	}
	return err
}
