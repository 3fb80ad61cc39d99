// Package offer renders and stores branch offer letters.
package offer

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/rjoshi/counselport/internal/app/models"
)

// notAllocated is rendered when an offer is generated before any branch
// has been assigned.
const notAllocated = "Not allocated"

const letterTemplate = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>Offer Letter</title></head>
<body>
<h1>Offer Letter</h1>
<p>Student: {{.Name}}</p>
<p>Allocated Branch: {{.Branch}}</p>
<p>Date: {{.Date}}</p>
</body>
</html>
`

// Generator writes one offer document per student id. The latest write
// wins; regenerating after a later allocation overwrites the document.
type Generator struct {
	dir    string
	tmpl   *template.Template
	logger zerolog.Logger

	// now is swappable for tests
	now func() time.Time
}

// NewGenerator creates a Generator writing under dir. The directory is
// created lazily on first generation.
func NewGenerator(dir string, logger zerolog.Logger) *Generator {
	return &Generator{
		dir:    dir,
		tmpl:   template.Must(template.New("offer").Parse(letterTemplate)),
		logger: logger,
		now:    time.Now,
	}
}

// Dir returns the directory offers are written under.
func (g *Generator) Dir() string {
	return g.dir
}

// Path returns the storage path for a student's offer document.
func (g *Generator) Path(studentID int64) string {
	return filepath.Join(g.dir, fmt.Sprintf("offer_%d.html", studentID))
}

// Exists reports whether an offer document has been written for the student.
func (g *Generator) Exists(studentID int64) bool {
	_, err := os.Stat(g.Path(studentID))
	return err == nil
}

// Generate renders the offer letter for the student and writes it to
// durable storage, returning the written path. There is no rollback: if
// the caller already flagged the row as generated and this write fails,
// the flag and the filesystem disagree until the next regeneration.
func (g *Generator) Generate(student *models.Student) (string, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create offer directory %s: %w", g.dir, err)
	}

	branch := notAllocated
	if student.AllocatedBranch != nil && *student.AllocatedBranch != "" {
		branch = *student.AllocatedBranch
	}

	var buf bytes.Buffer
	err := g.tmpl.Execute(&buf, map[string]string{
		"Name":   student.Name,
		"Branch": branch,
		"Date":   g.now().Format("2 Jan 2006 15:04"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render offer letter: %w", err)
	}

	path := g.Path(student.ID)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write offer letter: %w", err)
	}

	g.logger.Info().Int64("studentID", student.ID).Str("path", path).Msg("Offer letter generated")
	return path, nil
}
