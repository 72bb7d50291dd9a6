package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"produceotron/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. Backlog and
// resource sets are stored as JSON columns; plan parameters get their own
// columns so listing stays cheap.
type SQLitePlanRepo struct {
	db *sql.DB
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db *sql.DB) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

const planColumns = `id, name, start_date, deadline, unit, inefficiency, default_cost,
	margin, contingency, primary_currency, secondary_currency, backlog, resources,
	created_at, updated_at`

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.Plan) error {
	backlog, resources, err := marshalPlanData(p)
	if err != nil {
		return err
	}
	query := `INSERT INTO plans (` + planColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.StartDate.Format(dateLayout),
		p.Deadline.Format(dateLayout),
		string(p.Unit),
		float64(p.Inefficiency),
		p.DefaultMonthlyCost,
		float64(p.Margin),
		float64(p.Contingency),
		p.PrimaryCurrency,
		p.SecondaryCurrency,
		backlog,
		resources,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByName(ctx context.Context, name string) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE name = ?`
	row := r.db.QueryRowContext(ctx, query, name)
	p, err := scanPlan(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plan %q: %w", name, ErrNotFound)
	}
	return p, err
}

func (r *SQLitePlanRepo) List(ctx context.Context) ([]*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var plans []*domain.Plan
	for rows.Next() {
		p, err := scanPlan(rows.Scan)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

func (r *SQLitePlanRepo) Update(ctx context.Context, p *domain.Plan) error {
	backlog, resources, err := marshalPlanData(p)
	if err != nil {
		return err
	}
	query := `UPDATE plans SET name = ?, start_date = ?, deadline = ?, unit = ?,
		inefficiency = ?, default_cost = ?, margin = ?, contingency = ?,
		primary_currency = ?, secondary_currency = ?, backlog = ?, resources = ?,
		updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.StartDate.Format(dateLayout),
		p.Deadline.Format(dateLayout),
		string(p.Unit),
		float64(p.Inefficiency),
		p.DefaultMonthlyCost,
		float64(p.Margin),
		float64(p.Contingency),
		p.PrimaryCurrency,
		p.SecondaryCurrency,
		backlog,
		resources,
		nowUTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan %q: %w", p.Name, ErrNotFound)
	}
	return nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plan %q: %w", name, ErrNotFound)
	}
	return nil
}

func marshalPlanData(p *domain.Plan) (backlog, resources string, err error) {
	b, err := json.Marshal(p.Backlog)
	if err != nil {
		return "", "", fmt.Errorf("marshaling backlog: %w", err)
	}
	res, err := json.Marshal(p.Resources)
	if err != nil {
		return "", "", fmt.Errorf("marshaling resources: %w", err)
	}
	return string(b), string(res), nil
}

func scanPlan(scan func(dest ...any) error) (*domain.Plan, error) {
	var (
		p            domain.Plan
		startDate    string
		deadline     string
		unit         string
		inefficiency float64
		margin       float64
		contingency  float64
		backlog      string
		resources    string
		createdAt    string
		updatedAt    string
	)
	err := scan(&p.ID, &p.Name, &startDate, &deadline, &unit, &inefficiency,
		&p.DefaultMonthlyCost, &margin, &contingency, &p.PrimaryCurrency,
		&p.SecondaryCurrency, &backlog, &resources, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if p.StartDate, err = time.Parse(dateLayout, startDate); err != nil {
		return nil, fmt.Errorf("parsing plan start date: %w", err)
	}
	if p.Deadline, err = time.Parse(dateLayout, deadline); err != nil {
		return nil, fmt.Errorf("parsing plan deadline: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing plan created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing plan updated_at: %w", err)
	}
	p.Unit = domain.EffortUnit(unit)
	p.Inefficiency = domain.Percent(inefficiency)
	p.Margin = domain.Percent(margin)
	p.Contingency = domain.Percent(contingency)

	if err := json.Unmarshal([]byte(backlog), &p.Backlog); err != nil {
		return nil, fmt.Errorf("unmarshaling backlog: %w", err)
	}
	if err := json.Unmarshal([]byte(resources), &p.Resources); err != nil {
		return nil, fmt.Errorf("unmarshaling resources: %w", err)
	}
	return &p, nil
}
