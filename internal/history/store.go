package history

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"

	"github.com/akverma/loanlens/internal/decision"
	"github.com/akverma/loanlens/internal/encode"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is the local decision log: one SQLite table, append-only
// except for an explicit reset.
type Store struct {
	db *sql.DB
}

// Record is one logged decision together with the application it was
// made for.
type Record struct {
	ID        string
	CreatedAt time.Time

	Gender        string
	Married       string
	Dependents    string
	Education     string
	SelfEmployed  string
	PropertyArea  string
	CreditHistory string

	ApplicantIncome   float64
	CoapplicantIncome float64
	LoanAmount        float64
	LoanTerm          float64

	Verdict    string
	Reasons    []string
	ModelLabel int
}

// NewRecord builds a Record from a raw application and its decision.
func NewRecord(raw encode.RawApplication, d *decision.Decision) *Record {
	num := func(field string) float64 {
		v, _ := parseFloat(raw[field])
		return v
	}
	return &Record{
		Gender:            raw[encode.ColGender],
		Married:           raw[encode.ColMarried],
		Dependents:        raw[encode.ColDependents],
		Education:         raw[encode.ColEducation],
		SelfEmployed:      raw[encode.ColSelfEmployed],
		PropertyArea:      raw[encode.ColPropertyArea],
		CreditHistory:     raw[encode.ColCreditHistory],
		ApplicantIncome:   num(encode.ColApplicantIncome),
		CoapplicantIncome: num(encode.ColCoapplicantIncome),
		LoanAmount:        num(encode.ColLoanAmount),
		LoanTerm:          num(encode.ColLoanTerm),
		Verdict:           string(d.Verdict),
		Reasons:           append([]string(nil), d.Reasons...),
		ModelLabel:        d.ModelLabel,
	}
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Open connects to the SQLite database at dsn, applies the recommended
// pragmas, and runs the embedded migrations.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

// Insert appends one decision record. A missing ID gets a fresh UUID
// and a zero CreatedAt gets the current UTC time.
func (s *Store) Insert(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO decisions (
			id, created_at,
			gender, married, dependents, education, self_employed, property_area, credit_history,
			applicant_income, coapplicant_income, loan_amount, loan_term,
			verdict, reasons, model_label
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID, rec.CreatedAt,
		rec.Gender, rec.Married, rec.Dependents, rec.Education, rec.SelfEmployed, rec.PropertyArea, rec.CreditHistory,
		rec.ApplicantIncome, rec.CoapplicantIncome, rec.LoanAmount, rec.LoanTerm,
		rec.Verdict, strings.Join(rec.Reasons, ", "), rec.ModelLabel,
	)
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}
	return nil
}

// List returns up to limit records, newest first. limit <= 0 means all.
func (s *Store) List(ctx context.Context, limit int) ([]*Record, error) {
	q := `
		SELECT id, created_at,
			gender, married, dependents, education, self_employed, property_area, credit_history,
			applicant_income, coapplicant_income, loan_amount, loan_term,
			verdict, reasons, model_label
		FROM decisions
		ORDER BY created_at DESC, id
	`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		var rec Record
		var reasons string
		err := rows.Scan(
			&rec.ID, &rec.CreatedAt,
			&rec.Gender, &rec.Married, &rec.Dependents, &rec.Education, &rec.SelfEmployed, &rec.PropertyArea, &rec.CreditHistory,
			&rec.ApplicantIncome, &rec.CoapplicantIncome, &rec.LoanAmount, &rec.LoanTerm,
			&rec.Verdict, &reasons, &rec.ModelLabel,
		)
		if err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		if reasons != "" {
			rec.Reasons = strings.Split(reasons, ", ")
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// Reset deletes every decision record.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM decisions`); err != nil {
		return fmt.Errorf("reset decisions: %w", err)
	}
	return nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}
	drv, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("open migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", drv)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// LOANLENS_DB, then $XDG_DATA_HOME/loanlens/loanlens.db, then
// ~/.local/share/loanlens/loanlens.db.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LOANLENS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "loanlens", "loanlens.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
