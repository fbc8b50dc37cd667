package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite

	"github.com/abdidvp/polaxis/internal/domain"
)

const defaultSQLiteDSN = "file:polaxis.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"

// SQLStore implements domain.ResultStore on SQLite or Postgres.
type SQLStore struct {
	db *sql.DB
}

// OpenSQL opens the database and ensures the results table exists.
func OpenSQL(ctx context.Context, driver domain.StoreDriver, dsn string) (*SQLStore, error) {
	var drvName string
	switch driver {
	case domain.StoreSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = defaultSQLiteDSN
		}
		if err := ensureDir(dsn); err != nil {
			return nil, err
		}
	case domain.StorePostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/polaxis?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported sql driver: %q", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if driver == domain.StoreSQLite {
		// One writer at a time; also keeps :memory: databases on one connection.
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to %s: %w", driver, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

// ensureDir creates the parent directory of a file-backed sqlite DSN.
func ensureDir(dsn string) error {
	path, _, _ := strings.Cut(strings.TrimPrefix(dsn, "file:"), "?")
	if path == "" || path == ":memory:" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating database directory: %w", err)
	}
	return nil
}

// Portable across both drivers: BIGINT millis, TEXT JSON, $n placeholders.
const schema = `
CREATE TABLE IF NOT EXISTS results (
  id TEXT PRIMARY KEY,
  respondent_id TEXT NOT NULL DEFAULT '',
  bank_version TEXT NOT NULL DEFAULT '',
  code TEXT NOT NULL,
  name TEXT NOT NULL,
  classification_json TEXT NOT NULL,
  answers_json TEXT NOT NULL,
  created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS results_code_idx ON results (code);
`

func (s *SQLStore) Save(ctx context.Context, rec *domain.ResultRecord) error {
	cls, err := json.Marshal(rec.Classification)
	if err != nil {
		return err
	}
	ans, err := json.Marshal(rec.Answers)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO results (id, respondent_id, bank_version, code, name, classification_json, answers_json, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		rec.ID, rec.RespondentID, rec.BankVersion, rec.Code, rec.Name, string(cls), string(ans), rec.CreatedAt.UnixMilli())
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (*domain.ResultRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, respondent_id, bank_version, code, name, classification_json, answers_json, created_at
		FROM results WHERE id=$1`, id)

	var (
		rec      domain.ResultRecord
		cls, ans string
		created  int64
	)
	err := row.Scan(&rec.ID, &rec.RespondentID, &rec.BankVersion, &rec.Code, &rec.Name, &cls, &ans, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrResultNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(cls), &rec.Classification); err != nil {
		return nil, fmt.Errorf("decoding classification of %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(ans), &rec.Answers); err != nil {
		return nil, fmt.Errorf("decoding answers of %s: %w", id, err)
	}
	rec.CreatedAt = time.UnixMilli(created).UTC()
	return &rec, nil
}

func (s *SQLStore) ListCodes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT code FROM results ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
