package coverletters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobhunt-backend/internal/extract"
	"jobhunt-backend/internal/llm"
	"jobhunt-backend/internal/profile"
	"jobhunt-backend/internal/render"
	"jobhunt-backend/internal/shared/metrics"
	"jobhunt-backend/internal/shared/storage/object"
	"jobhunt-backend/internal/shared/telemetry"
)

// ErrEmptyInput is returned when a required generation input is blank.
var ErrEmptyInput = errors.New("required input is empty")

// GenerateInput carries one generation request.
type GenerateInput struct {
	JobDescription  string
	ResumeName      string
	TitleOverride   string
	CompanyOverride string
}

// Result describes a completed generation session.
type Result struct {
	SessionKey   string `json:"session_key"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Letter       string `json:"letter"`
	DocumentName string `json:"document_name"`
}

// Service runs the generation pipeline: persist the job description, extract
// the resume text, compose the prompt, call the model, persist the letter,
// then render and persist the PDF. A failure partway leaves the artifacts
// written so far in place; nothing rolls back.
type Service struct {
	Sessions *SessionStore
	Resumes  object.ObjectStore
	Profiles profile.Repo
	LLM      llm.Client

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewService(sessions *SessionStore, resumes object.ObjectStore, profiles profile.Repo, client llm.Client) *Service {
	return &Service{
		Sessions: sessions,
		Resumes:  resumes,
		Profiles: profiles,
		LLM:      client,
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Generate runs the full pipeline for one job description and resume.
func (s *Service) Generate(ctx context.Context, in GenerateInput) (Result, error) {
	if s.LLM == nil {
		return Result{}, llm.ErrMissingAPIKey
	}
	if strings.TrimSpace(in.JobDescription) == "" {
		return Result{}, fmt.Errorf("%w: job description", ErrEmptyInput)
	}
	if strings.TrimSpace(in.ResumeName) == "" {
		return Result{}, fmt.Errorf("%w: resume name", ErrEmptyInput)
	}

	metrics.IncLetterStarted()
	start := metrics.NowMillis()

	title, company := ResolveTitleAndCompany(in.JobDescription, in.TitleOverride, in.CompanyOverride)
	startedAt := s.now()
	session, err := s.Sessions.Begin(company, title, startedAt)
	if err != nil {
		return Result{}, s.fail(session, err)
	}
	if _, err := s.Sessions.Persist(session, JobDescriptionArtifact, []byte(in.JobDescription)); err != nil {
		return Result{}, s.fail(session, err)
	}

	resumeText, err := extract.TextFromStore(ctx, s.Resumes, in.ResumeName)
	if err != nil {
		return Result{}, s.fail(session, err)
	}

	messages := llm.BuildCoverLetterPrompt(title, company, in.JobDescription, resumeText)
	letter, err := s.LLM.GenerateLetter(ctx, messages)
	if err != nil {
		return Result{}, s.fail(session, err)
	}
	if _, err := s.Sessions.Persist(session, CoverLetterArtifact, []byte(letter)); err != nil {
		return Result{}, s.fail(session, err)
	}

	p, err := s.userProfile(ctx)
	if err != nil {
		return Result{}, s.fail(session, err)
	}
	pdfBytes, err := render.CoverLetterPDF(letter, p.FullName(), p.Email, p.ContactLink(), company, startedAt)
	if err != nil {
		return Result{}, s.fail(session, err)
	}
	docName := render.FileName(p.FullName(), company)
	if _, err := s.Sessions.Persist(session, docName, pdfBytes); err != nil {
		return Result{}, s.fail(session, err)
	}

	metrics.IncLetterCompleted()
	metrics.ObserveLetterDurationMs(metrics.NowMillis() - start)
	telemetry.Info("letter.generated", map[string]any{
		"session_key": session.Key,
		"title":       title,
		"company":     company,
		"resume":      in.ResumeName,
	})
	return Result{
		SessionKey:   session.Key,
		Title:        title,
		Company:      company,
		Letter:       letter,
		DocumentName: docName,
	}, nil
}

// userProfile loads the profile, treating an unset profile as blank so a
// letter can still render without personal details.
func (s *Service) userProfile(ctx context.Context) (profile.Profile, error) {
	if s.Profiles == nil {
		return profile.Profile{}, nil
	}
	p, err := s.Profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, nil
		}
		return profile.Profile{}, err
	}
	return p, nil
}

func (s *Service) fail(session Session, err error) error {
	metrics.IncLetterFailed()
	telemetry.Error("letter.failed", map[string]any{
		"session_key": session.Key,
		"error":       err.Error(),
	})
	return err
}
