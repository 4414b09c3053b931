package grading

import (
	"context"
	"fmt"
	"strings"
	"time"

	"Civilcalc/internal/gradation"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type tableRow struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Standard string `db:"standard"`
	Family   string `db:"family"`
	Grade    string `db:"grade"`
	Policy   string `db:"corrupt_policy"`
}

type sieveRow struct {
	TableID  string  `db:"table_id"`
	Position int     `db:"position"`
	Size     string  `db:"size"`
	PassMin  float64 `db:"pass_min"`
	PassMax  float64 `db:"pass_max"`
}

const (
	tablesQuery = `SELECT id, name, standard, family, grade, corrupt_policy FROM grading_tables ORDER BY id`
	sievesQuery = `SELECT table_id, position, size, pass_min, pass_max FROM grading_sieves ORDER BY table_id, position`
)

// WithSSLMode appends sslmode=require unless the connection string already sets a mode.
func WithSSLMode(dsn string) string {
	if strings.Contains(dsn, "sslmode=") {
		return dsn
	}
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		if strings.Contains(dsn, "?") {
			return dsn + "&sslmode=require"
		}
		return dsn + "?sslmode=require"
	}
	return dsn + " sslmode=require"
}

func Open(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", WithSSLMode(dsn))
	if err != nil {
		return nil, fmt.Errorf("open grading db: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping grading db: %w", err)
	}
	return db, nil
}

// LoadPostgres reads every table and its sieves, coarsest first by position.
func LoadPostgres(ctx context.Context, db *sqlx.DB) (*Catalog, error) {
	var tables []tableRow
	if err := db.SelectContext(ctx, &tables, tablesQuery); err != nil {
		return nil, fmt.Errorf("select grading tables: %w", err)
	}
	var sieves []sieveRow
	if err := db.SelectContext(ctx, &sieves, sievesQuery); err != nil {
		return nil, fmt.Errorf("select grading sieves: %w", err)
	}
	c, err := NewCatalog(assemble(tables, sieves))
	if err != nil {
		return nil, fmt.Errorf("invalid grading tables: %w", err)
	}
	return c, nil
}

// assemble attaches sieves to their tables. Rows must already be ordered by position;
// sieves that reference an unknown table are dropped.
func assemble(tables []tableRow, sieves []sieveRow) []Table {
	out := make([]Table, len(tables))
	index := make(map[string]int, len(tables))
	for i, t := range tables {
		out[i] = Table{
			ID:       t.ID,
			Name:     t.Name,
			Standard: t.Standard,
			Family:   t.Family,
			Grade:    t.Grade,
			Policy:   gradation.CorruptPolicy(t.Policy),
		}
		index[t.ID] = i
	}
	for _, s := range sieves {
		i, ok := index[s.TableID]
		if !ok {
			continue
		}
		out[i].Sieves = append(out[i].Sieves, gradation.SieveSpec{Size: s.Size, PassMin: s.PassMin, PassMax: s.PassMax})
	}
	return out
}
