package main

// Render a sample cover letter PDF without calling the model:
//   go run ./cmd/letterdemo -out ./out/sample_cover_letter.pdf

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jobhunt-backend/internal/render"
)

const sampleLetter = `Dear Hiring Manager,

I am writing to express my interest in the Staff Engineer role at Acme Corp. Over the past decade I have designed and operated backend services in Go, with a focus on reliability and clean interfaces.

At my current position I led the migration of a monolithic billing system to a set of focused services, cutting deploy times from hours to minutes. I believe that experience maps directly onto the challenges described in your posting.

I would welcome the chance to discuss how I can contribute to your team.

Sincerely,
Jordan Reyes`

func main() {
	outPath := flag.String("out", "./out/sample_cover_letter.pdf", "output path for the generated PDF")
	flag.Parse()

	pdfBytes, err := render.CoverLetterPDF(
		sampleLetter,
		"Jordan Reyes",
		"jordan@example.com",
		"jordan.dev",
		"Acme Corp",
		time.Now(),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, pdfBytes, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s (%d bytes, file name %s)\n", *outPath, len(pdfBytes), render.FileName("Jordan Reyes", "Acme Corp"))
}
