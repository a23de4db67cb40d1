package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoGetReturnsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("SELECT first_name").
		WithArgs(profileRowID).
		WillReturnRows(sqlmock.NewRows([]string{"first_name"}))

	repo := &PGRepo{DB: db}
	if _, err := repo.Get(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get err = %v, want ErrNotFound", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetLoadsExperienceInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	now := time.Now().UTC()
	profileCols := []string{
		"first_name", "last_name", "email", "link", "phone", "linkedin", "website", "github",
		"street", "city", "state", "zip_code", "country", "updated_at",
	}
	mock.ExpectQuery("SELECT first_name").
		WithArgs(profileRowID).
		WillReturnRows(sqlmock.NewRows(profileCols).AddRow(
			"Jordan", "Reyes", "jordan@example.com", "example.com/jordan", "555-0100",
			"linkedin.com/in/jordan", "jordan.dev", "github.com/jordan",
			"1 Main St", "Springfield", "IL", "62701", "USA", now,
		))
	mock.ExpectQuery("SELECT job_title").
		WithArgs(profileRowID).
		WillReturnRows(sqlmock.NewRows([]string{"job_title", "company", "start_date", "end_date", "current", "duties"}).
			AddRow("Engineer", "Acme", "Jan 02, 2020", PresentMarker, true, "Built things").
			AddRow("Intern", "Globex", "Jun 01, 2018", "Aug 30, 2018", false, "Learned things"))

	repo := &PGRepo{DB: db}
	got, err := repo.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FullName() != "Jordan Reyes" {
		t.Fatalf("FullName = %q", got.FullName())
	}
	if len(got.WorkExperience) != 2 {
		t.Fatalf("WorkExperience len = %d, want 2", len(got.WorkExperience))
	}
	if got.WorkExperience[0].Company != "Acme" || got.WorkExperience[1].Company != "Globex" {
		t.Fatalf("experience out of order: %+v", got.WorkExperience)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoSaveReplacesExperience(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	p := Profile{
		FirstName: "Jordan",
		LastName:  "Reyes",
		Email:     "jordan@example.com",
		WorkExperience: []WorkExperience{
			{JobTitle: "Engineer", Company: "Acme", StartDate: "Jan 02, 2020", EndDate: PresentMarker, Current: true},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(
			profileRowID,
			p.FirstName, p.LastName, p.Email, "", "", "", "", "",
			"", "", "", "", "",
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM work_experiences").
		WithArgs(profileRowID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO work_experiences").
		WithArgs(profileRowID, 0, "Engineer", "Acme", "Jan 02, 2020", PresentMarker, true, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := &PGRepo{DB: db}
	if err := repo.Save(context.Background(), p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
