package profile

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// profileRowID keys the single profile row. There is one user; the fixed id
// keeps Save an upsert instead of inventing identity.
const profileRowID = "default"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Get returns the stored profile with its work experience in position order.
func (r *PGRepo) Get(ctx context.Context) (Profile, error) {
	const query = `
SELECT first_name, last_name, email, link, phone, linkedin, website, github,
       street, city, state, zip_code, country, updated_at
FROM profiles
WHERE id = $1
LIMIT 1`
	var p Profile
	var updatedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, profileRowID).Scan(
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Link,
		&p.Phone,
		&p.LinkedIn,
		&p.Website,
		&p.GitHub,
		&p.Street,
		&p.City,
		&p.State,
		&p.ZipCode,
		&p.Country,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	if updatedAt.Valid {
		p.UpdatedAt = updatedAt.Time
	}

	const expQuery = `
SELECT job_title, company, start_date, end_date, current, duties
FROM work_experiences
WHERE profile_id = $1
ORDER BY position ASC`
	rows, err := r.DB.QueryContext(ctx, expQuery, profileRowID)
	if err != nil {
		return Profile{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var exp WorkExperience
		if err := rows.Scan(&exp.JobTitle, &exp.Company, &exp.StartDate, &exp.EndDate, &exp.Current, &exp.Duties); err != nil {
			return Profile{}, err
		}
		p.WorkExperience = append(p.WorkExperience, exp)
	}
	return p, rows.Err()
}

// Save replaces the profile and its work experience atomically.
func (r *PGRepo) Save(ctx context.Context, p Profile) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const upsert = `
INSERT INTO profiles (
	id, first_name, last_name, email, link, phone, linkedin, website, github,
	street, city, state, zip_code, country, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (id) DO UPDATE SET
	first_name = EXCLUDED.first_name,
	last_name = EXCLUDED.last_name,
	email = EXCLUDED.email,
	link = EXCLUDED.link,
	phone = EXCLUDED.phone,
	linkedin = EXCLUDED.linkedin,
	website = EXCLUDED.website,
	github = EXCLUDED.github,
	street = EXCLUDED.street,
	city = EXCLUDED.city,
	state = EXCLUDED.state,
	zip_code = EXCLUDED.zip_code,
	country = EXCLUDED.country,
	updated_at = EXCLUDED.updated_at`
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	if _, err := tx.ExecContext(ctx, upsert,
		profileRowID,
		p.FirstName,
		p.LastName,
		p.Email,
		p.Link,
		p.Phone,
		p.LinkedIn,
		p.Website,
		p.GitHub,
		p.Street,
		p.City,
		p.State,
		p.ZipCode,
		p.Country,
		updatedAt,
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM work_experiences WHERE profile_id = $1`, profileRowID); err != nil {
		return err
	}
	const insertExp = `
INSERT INTO work_experiences (profile_id, position, job_title, company, start_date, end_date, current, duties)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for i, exp := range p.WorkExperience {
		if _, err := tx.ExecContext(ctx, insertExp,
			profileRowID,
			i,
			exp.JobTitle,
			exp.Company,
			exp.StartDate,
			exp.EndDate,
			exp.Current,
			exp.Duties,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

var _ Repo = (*PGRepo)(nil)
