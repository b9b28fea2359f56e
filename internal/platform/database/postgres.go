package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

const listTablesQuery = `
	SELECT table_name
	FROM information_schema.tables
	WHERE table_schema NOT IN ('pg_catalog', 'information_schema')
	ORDER BY table_name
	LIMIT $1`

type PostgresHandle struct {
	DB   *sql.DB
	name string
}

func OpenPostgres(connStr, name string) (*PostgresHandle, error) {
	cfg, err := pgx.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parsing postgres connection string: %w", err)
	}
	if name != "" {
		cfg.Database = name
	}

	db := stdlib.OpenDB(*cfg)
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresHandle{DB: db, name: cfg.Database}, nil
}

func (h *PostgresHandle) Name() string {
	return h.name
}

func (h *PostgresHandle) ListCollections(ctx context.Context, limit int) ([]string, error) {
	rows, err := h.DB.QueryContext(ctx, listTablesQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	tables := make([]string, 0, limit)
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		tables = append(tables, table)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tables: %w", err)
	}
	return tables, nil
}

func (h *PostgresHandle) Close() error {
	if h.DB == nil {
		return nil
	}
	err := h.DB.Close()
	log.Println("Database connection closed.")
	return err
}
