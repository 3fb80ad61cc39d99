package offer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjoshi/counselport/internal/app/models"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g := NewGenerator(filepath.Join(t.TempDir(), "offers"), zerolog.Nop())
	g.now = func() time.Time { return time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC) }
	return g
}

func TestGenerateWritesLetter(t *testing.T) {
	g := newTestGenerator(t)
	branch := "CSE"
	student := &models.Student{ID: 7, Name: "Asha Verma", AllocatedBranch: &branch}

	path, err := g.Generate(student)
	require.NoError(t, err)
	assert.Equal(t, g.Path(7), path)
	assert.True(t, g.Exists(7))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Asha Verma")
	assert.Contains(t, string(content), "CSE")
	assert.Contains(t, string(content), "1 Sep 2026 10:30")
}

func TestGenerateWithoutAllocation(t *testing.T) {
	g := newTestGenerator(t)

	path, err := g.Generate(&models.Student{ID: 3, Name: "Ravi"})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Not allocated")
}

func TestGenerateCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "offers")
	g := NewGenerator(dir, zerolog.Nop())

	_, err := g.Generate(&models.Student{ID: 1, Name: "Asha"})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGenerateOverwrites(t *testing.T) {
	g := newTestGenerator(t)
	first := "ECE"
	second := "CSE"
	student := &models.Student{ID: 5, Name: "Asha", AllocatedBranch: &first}

	_, err := g.Generate(student)
	require.NoError(t, err)

	student.AllocatedBranch = &second
	path, err := g.Generate(student)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "CSE")
	assert.NotContains(t, string(content), "ECE")
}

func TestExistsBeforeGeneration(t *testing.T) {
	g := newTestGenerator(t)
	assert.False(t, g.Exists(99))
}

func TestGenerateEscapesName(t *testing.T) {
	g := newTestGenerator(t)

	path, err := g.Generate(&models.Student{ID: 2, Name: "<script>alert(1)</script>"})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "<script>")
}
