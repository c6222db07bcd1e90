package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/speedsolve/cubecomp/internal/models"
)

// Repository provides data access methods
type Repository struct {
	db *sql.DB
}

// New creates a new Repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(1) // SQLite works best with single connection
	db.SetMaxIdleConns(1)

	repo := &Repository{db: db}

	// Run migrations
	if err := repo.migrate(); err != nil {
		return nil, err
	}

	return repo, nil
}

// DB returns the underlying database connection (for transactions)
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping checks if the database connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// migrate runs database migrations
func (r *Repository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS competitions (
			number INTEGER PRIMARY KEY,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			events TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS competitors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL,
			wca_id TEXT,
			records TEXT NOT NULL DEFAULT '{}',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_competitors_name ON competitors(name)`,
	}

	additionalMigrations := []string{
		`ALTER TABLE competitors ADD COLUMN wca_id TEXT`,
	}

	for _, migration := range migrations {
		if _, err := r.db.Exec(migration); err != nil {
			return err
		}
	}

	for _, migration := range additionalMigrations {
		r.db.Exec(migration) // Ignore errors - columns may already exist
	}

	return nil
}

// dateLayout is how competition window endpoints are stored. Date-only:
// time of day never participates in window checks.
const dateLayout = "2006-01-02"

// ==================== Competition Methods ====================

// scanCompetition builds a Competition from one row's columns
func scanCompetition(number int, startDate, endDate string, eventsJSON []byte) (*models.Competition, error) {
	start, err := time.ParseInLocation(dateLayout, startDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("bad start date %q: %w", startDate, err)
	}
	end, err := time.ParseInLocation(dateLayout, endDate, time.Local)
	if err != nil {
		return nil, fmt.Errorf("bad end date %q: %w", endDate, err)
	}

	comp := &models.Competition{Number: number, StartDate: start, EndDate: end}
	if err := json.Unmarshal(eventsJSON, &comp.Events); err != nil {
		return nil, fmt.Errorf("bad events document for competition %d: %w", number, err)
	}
	return comp, nil
}

// GetCompetition retrieves a competition by number
func (r *Repository) GetCompetition(ctx context.Context, number int) (*models.Competition, error) {
	var startDate, endDate string
	var eventsJSON []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT start_date, end_date, events FROM competitions WHERE number = ?
	`, number).Scan(&startDate, &endDate, &eventsJSON)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return scanCompetition(number, startDate, endDate, eventsJSON)
}

// GetLatestCompetition retrieves the competition with the highest number
func (r *Repository) GetLatestCompetition(ctx context.Context) (*models.Competition, error) {
	var number int
	var startDate, endDate string
	var eventsJSON []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT number, start_date, end_date, events
		FROM competitions ORDER BY number DESC LIMIT 1
	`).Scan(&number, &startDate, &endDate, &eventsJSON)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return scanCompetition(number, startDate, endDate, eventsJSON)
}

// ListCompetitionNumbers returns all competition numbers, newest first
func (r *Repository) ListCompetitionNumbers(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT number FROM competitions ORDER BY number DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		numbers = append(numbers, n)
	}
	return numbers, rows.Err()
}

// SaveCompetition upserts a competition by number
func (r *Repository) SaveCompetition(ctx context.Context, comp *models.Competition) error {
	eventsJSON, err := json.Marshal(comp.Events)
	if err != nil {
		return fmt.Errorf("failed to encode events document: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO competitions (number, start_date, end_date, events)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(number) DO UPDATE SET
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			events = excluded.events,
			updated_at = CURRENT_TIMESTAMP
	`, comp.Number, comp.StartDate.Format(dateLayout), comp.EndDate.Format(dateLayout), string(eventsJSON))
	return err
}

// ==================== Competitor Methods ====================

func scanCompetitor(id int64, name string, wcaID sql.NullString, recordsJSON []byte) (*models.Competitor, error) {
	c := &models.Competitor{ID: id, Name: name, WcaID: wcaID.String}
	if len(recordsJSON) > 0 {
		if err := json.Unmarshal(recordsJSON, &c.Records); err != nil {
			return nil, fmt.Errorf("bad records document for competitor %d: %w", id, err)
		}
	}
	if c.Records == nil {
		c.Records = map[string]json.RawMessage{}
	}
	return c, nil
}

// ListCompetitors returns all competitors ordered by name
func (r *Repository) ListCompetitors(ctx context.Context) ([]models.Competitor, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, wca_id, records FROM competitors ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var competitors []models.Competitor
	for rows.Next() {
		var id int64
		var name string
		var wcaID sql.NullString
		var recordsJSON []byte
		if err := rows.Scan(&id, &name, &wcaID, &recordsJSON); err != nil {
			return nil, err
		}
		c, err := scanCompetitor(id, name, wcaID, recordsJSON)
		if err != nil {
			return nil, err
		}
		competitors = append(competitors, *c)
	}
	return competitors, rows.Err()
}

// GetCompetitor retrieves a competitor by id
func (r *Repository) GetCompetitor(ctx context.Context, id int64) (*models.Competitor, error) {
	var name string
	var wcaID sql.NullString
	var recordsJSON []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT name, wca_id, records FROM competitors WHERE id = ?
	`, id).Scan(&name, &wcaID, &recordsJSON)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return scanCompetitor(id, name, wcaID, recordsJSON)
}

// GetCompetitorByName retrieves a competitor by exact name
func (r *Repository) GetCompetitorByName(ctx context.Context, name string) (*models.Competitor, error) {
	var id int64
	var wcaID sql.NullString
	var recordsJSON []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT id, wca_id, records FROM competitors WHERE name = ?
	`, name).Scan(&id, &wcaID, &recordsJSON)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return scanCompetitor(id, name, wcaID, recordsJSON)
}

// CreateCompetitor creates a competitor with an empty records document
func (r *Repository) CreateCompetitor(ctx context.Context, name, wcaID string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO competitors (name, wca_id, records) VALUES (?, ?, '{}')
	`, name, nullIfEmpty(wcaID))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	return result.LastInsertId()
}

// UpdateCompetitor updates a competitor's profile fields
func (r *Repository) UpdateCompetitor(ctx context.Context, id int64, name, wcaID string) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE competitors SET name = ?, wca_id = ? WHERE id = ?
	`, name, nullIfEmpty(wcaID), id)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return ErrDuplicate
		}
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCompetitor deletes a competitor
func (r *Repository) DeleteCompetitor(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM competitors WHERE id = ?`, id)
	return err
}

// GetRecordDoc returns a competitor's stored record document for one
// event. A nil document with no error means the competitor has no
// record for that event yet.
func (r *Repository) GetRecordDoc(ctx context.Context, competitorID int64, eventID string) (json.RawMessage, error) {
	c, err := r.GetCompetitor(ctx, competitorID)
	if err != nil {
		return nil, err
	}
	return c.Records[eventID], nil
}

// SetRecordDoc stores a competitor's record document for one event,
// leaving all other events untouched.
func (r *Repository) SetRecordDoc(ctx context.Context, competitorID int64, eventID string, doc json.RawMessage) error {
	c, err := r.GetCompetitor(ctx, competitorID)
	if err != nil {
		return err
	}
	c.Records[eventID] = doc

	recordsJSON, err := json.Marshal(c.Records)
	if err != nil {
		return fmt.Errorf("failed to encode records document: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE competitors SET records = ? WHERE id = ?
	`, string(recordsJSON), competitorID)
	return err
}

// nullIfEmpty maps "" to NULL for optional text columns
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// ==================== Settings Methods ====================

// GetSetting retrieves a setting value by key
func (r *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	return value, err
}

// SetSetting stores a setting value
func (r *Repository) SetSetting(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
