// Package store provides SQLite-backed persistence for saved scenarios and
// synthesized alert snapshots. It is the external collaborator that owns the
// alert lifecycle, including the acknowledged flag the engine never touches.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theledgerdev/runway/internal/engine"
	"github.com/theledgerdev/runway/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrScenarioNotFound is returned when a named scenario does not exist.
var ErrScenarioNotFound = errors.New("scenario not found")

// ErrAlertNotFound is returned when acknowledging an unknown alert ID.
var ErrAlertNotFound = errors.New("alert not found")

// Store wraps the runway database.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the XDG-compliant database location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "runway", "runway.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "runway", "runway.db")
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveScenario inserts or updates a named scenario.
func (s *Store) SaveScenario(sc model.Scenario) error {
	now := time.Now().UTC().Format(time.RFC3339)

	var retention sql.NullFloat64
	if sc.NetRevenueRetention != nil {
		retention = sql.NullFloat64{Float64: *sc.NetRevenueRetention, Valid: true}
	}

	_, err := s.db.Exec(`INSERT INTO scenarios
		(name, cash_on_hand, monthly_expenses, monthly_revenue,
		 expense_growth_rate, revenue_growth_rate, net_revenue_retention,
		 notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
		 cash_on_hand = excluded.cash_on_hand,
		 monthly_expenses = excluded.monthly_expenses,
		 monthly_revenue = excluded.monthly_revenue,
		 expense_growth_rate = excluded.expense_growth_rate,
		 revenue_growth_rate = excluded.revenue_growth_rate,
		 net_revenue_retention = excluded.net_revenue_retention,
		 notes = excluded.notes,
		 updated_at = excluded.updated_at`,
		sc.Name, sc.Params.CashOnHand, sc.Params.MonthlyExpenses, sc.Params.MonthlyRevenue,
		sc.Params.ExpenseGrowthRate, sc.Params.RevenueGrowthRate, retention,
		sc.Notes, now, now,
	)
	return err
}

// GetScenario loads a scenario by name.
func (s *Store) GetScenario(name string) (model.Scenario, error) {
	row := s.db.QueryRow(`SELECT
		name, cash_on_hand, monthly_expenses, monthly_revenue,
		expense_growth_rate, revenue_growth_rate, net_revenue_retention,
		notes, created_at, updated_at
		FROM scenarios WHERE name = ?`, name)

	sc, err := scanScenario(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Scenario{}, fmt.Errorf("%w: %q", ErrScenarioNotFound, name)
	}
	return sc, err
}

// ListScenarios returns all saved scenarios, most recently updated first.
func (s *Store) ListScenarios() ([]model.Scenario, error) {
	rows, err := s.db.Query(`SELECT
		name, cash_on_hand, monthly_expenses, monthly_revenue,
		expense_growth_rate, revenue_growth_rate, net_revenue_retention,
		notes, created_at, updated_at
		FROM scenarios ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scenarios []model.Scenario
	for rows.Next() {
		sc, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, rows.Err()
}

// DeleteScenario removes a scenario and its persisted alerts.
func (s *Store) DeleteScenario(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec("DELETE FROM scenarios WHERE name = ?", name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrScenarioNotFound, name)
	}
	if _, err := tx.Exec("DELETE FROM alerts WHERE scenario = ?", name); err != nil {
		return err
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanScenario(row rowScanner) (model.Scenario, error) {
	var sc model.Scenario
	var retention sql.NullFloat64
	var notes sql.NullString
	var createdStr, updatedStr string

	err := row.Scan(
		&sc.Name, &sc.Params.CashOnHand, &sc.Params.MonthlyExpenses, &sc.Params.MonthlyRevenue,
		&sc.Params.ExpenseGrowthRate, &sc.Params.RevenueGrowthRate, &retention,
		&notes, &createdStr, &updatedStr,
	)
	if err != nil {
		return model.Scenario{}, err
	}

	if retention.Valid {
		v := retention.Float64
		sc.NetRevenueRetention = &v
	}
	if notes.Valid {
		sc.Notes = notes.String
	}
	sc.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
	sc.UpdatedAt, _ = time.Parse(time.RFC3339, updatedStr)

	return sc, nil
}

// ReplaceAlerts swaps the persisted alert snapshot for a scenario with a
// freshly synthesized one. Acknowledged state survives the swap for alert
// types that reappear, so an acked runway warning stays acked across runs.
func (s *Store) ReplaceAlerts(scenario string, alerts []engine.Alert) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	acked := make(map[engine.AlertType]bool)
	rows, err := tx.Query("SELECT type, acknowledged FROM alerts WHERE scenario = ?", scenario)
	if err != nil {
		return err
	}
	for rows.Next() {
		var at string
		var ack int
		if err := rows.Scan(&at, &ack); err != nil {
			_ = rows.Close()
			return err
		}
		if ack != 0 {
			acked[engine.AlertType(at)] = true
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return err
	}
	_ = rows.Close()

	if _, err := tx.Exec("DELETE FROM alerts WHERE scenario = ?", scenario); err != nil {
		return err
	}

	for _, a := range alerts {
		var metadata []byte
		if a.Metadata != nil {
			metadata, err = json.Marshal(a.Metadata)
			if err != nil {
				return fmt.Errorf("encoding alert metadata: %w", err)
			}
		}

		ack := 0
		if acked[a.Type] {
			ack = 1
		}

		_, err = tx.Exec(`INSERT INTO alerts
			(id, scenario, type, severity, title, description, metadata, created_at, acknowledged)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, scenario, string(a.Type), string(a.Severity), a.Title, a.Description,
			string(metadata), a.Timestamp.UTC().Format(time.RFC3339), ack,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListAlerts returns the persisted alerts for a scenario in insertion order.
func (s *Store) ListAlerts(scenario string) ([]engine.Alert, error) {
	rows, err := s.db.Query(`SELECT
		id, type, severity, title, description, metadata, created_at, acknowledged
		FROM alerts WHERE scenario = ? ORDER BY rowid`, scenario)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var alerts []engine.Alert
	for rows.Next() {
		var a engine.Alert
		var typ, sev, createdStr string
		var desc, metadata sql.NullString
		var ack int

		if err := rows.Scan(&a.ID, &typ, &sev, &a.Title, &desc, &metadata, &createdStr, &ack); err != nil {
			return nil, err
		}

		a.Type = engine.AlertType(typ)
		a.Severity = engine.Severity(sev)
		a.Acknowledged = ack != 0
		if desc.Valid {
			a.Description = desc.String
		}
		a.Timestamp, _ = time.Parse(time.RFC3339, createdStr)
		if metadata.Valid && metadata.String != "" {
			a.Metadata = decodeMetadata(a.Type, []byte(metadata.String))
		}

		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

// AcknowledgeAlert flips the acknowledged flag on a persisted alert.
func (s *Store) AcknowledgeAlert(id string) error {
	res, err := s.db.Exec("UPDATE alerts SET acknowledged = 1 WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrAlertNotFound, id)
	}
	return nil
}

// UnacknowledgedCount returns how many persisted alerts await review.
func (s *Store) UnacknowledgedCount(scenario string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM alerts WHERE scenario = ? AND acknowledged = 0", scenario,
	).Scan(&count)
	return count, err
}

// decodeMetadata revives the typed metadata variant for an alert type.
func decodeMetadata(at engine.AlertType, data []byte) engine.AlertMetadata {
	switch at {
	case engine.AlertBurnSpike:
		var m engine.BurnSpikeMetadata
		if json.Unmarshal(data, &m) == nil {
			return m
		}
	case engine.AlertProfitabilityAchieved:
		var m engine.ProfitabilityMetadata
		if json.Unmarshal(data, &m) == nil {
			return m
		}
	case engine.AlertGrowthStall:
		var m engine.GrowthStallMetadata
		if json.Unmarshal(data, &m) == nil {
			return m
		}
	default:
		var m engine.RunwayMetadata
		if json.Unmarshal(data, &m) == nil {
			return m
		}
	}
	return nil
}
