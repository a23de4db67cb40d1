package applications

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (id, applied_on, position, company, location, status, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		app.ID,
		app.AppliedOn,
		app.Position,
		app.Company,
		app.Location,
		string(app.Status),
		app.Notes,
		app.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Application, error) {
	const query = `
SELECT id, applied_on, position, company, location, status, notes, created_at
FROM applications
WHERE id = $1
LIMIT 1`
	var app Application
	var status string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&app.ID,
		&app.AppliedOn,
		&app.Position,
		&app.Company,
		&app.Location,
		&status,
		&app.Notes,
		&app.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Application{}, ErrNotFound
		}
		return Application{}, err
	}
	app.Status = Status(status)
	return app, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Application, error) {
	const query = `
SELECT id, applied_on, position, company, location, status, notes, created_at
FROM applications
ORDER BY applied_on DESC, created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		var app Application
		var status string
		if err := rows.Scan(
			&app.ID,
			&app.AppliedOn,
			&app.Position,
			&app.Company,
			&app.Location,
			&status,
			&app.Notes,
			&app.CreatedAt,
		); err != nil {
			return nil, err
		}
		app.Status = Status(status)
		out = append(out, app)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, app Application) error {
	const query = `
UPDATE applications
SET applied_on = $1,
    position = $2,
    company = $3,
    location = $4,
    status = $5,
    notes = $6
WHERE id = $7`
	res, err := r.DB.ExecContext(ctx, query,
		app.AppliedOn,
		app.Position,
		app.Company,
		app.Location,
		string(app.Status),
		app.Notes,
		app.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
