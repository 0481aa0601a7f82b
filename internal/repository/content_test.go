package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/career-compass-bot/internal/quiz"
)

const bundledDataDir = "../../assets/data"

func TestNewContentRepositoryLoadsBundledData(t *testing.T) {
	repo, err := NewContentRepository(bundledDataDir)
	require.NoError(t, err)

	assert.NotEmpty(t, repo.Careers())
	assert.NotEmpty(t, repo.Categories())
	assert.NotEmpty(t, repo.Media())
	assert.NotEmpty(t, repo.Stories())
	assert.Len(t, repo.Resources(), 9)
	assert.NotEmpty(t, repo.Majors())
	assert.NotEmpty(t, repo.StudyAbroad())
	assert.NotEmpty(t, repo.Tips())

	content := repo.Quiz()
	assert.Len(t, content.Questions, 5)
	assert.True(t, content.HasInterest("Công nghệ thông tin"))
	for _, c := range quiz.Categories {
		assert.NotEmpty(t, content.Types[c].Suggestions, c)
	}
}

func TestCareerByID(t *testing.T) {
	repo, err := NewContentRepository(bundledDataDir)
	require.NoError(t, err)

	c, err := repo.CareerByID(3)
	require.NoError(t, err)
	assert.Equal(t, "Bác sĩ", c.Title)

	_, err = repo.CareerByID(999)
	assert.ErrorIs(t, err, ErrCareerNotFound)
}

func TestResourceByID(t *testing.T) {
	repo, err := NewContentRepository(bundledDataDir)
	require.NoError(t, err)

	r, err := repo.ResourceByID(6)
	require.NoError(t, err)
	assert.Equal(t, "checklist", r.Kind)

	_, err = repo.ResourceByID(0)
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

// copyData copies the bundled data into a temp dir and overwrites one file.
func copyData(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()

	entries, err := os.ReadDir(bundledDataDir)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(bundledDataDir, e.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, e.Name()), data, 0o644))
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	return dir
}

func TestNewContentRepositoryRejectsDuplicateIDs(t *testing.T) {
	dir := copyData(t, StoriesFile, `{"stories":[{"id":1,"name":"A"},{"id":1,"name":"B"}]}`)

	_, err := NewContentRepository(dir)
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestNewContentRepositoryRejectsWrongOptionCount(t *testing.T) {
	dir := copyData(t, QuizFile, `
interests: ["x"]
questions:
  - id: 1
    question: "q"
    options: ["a", "b", "c"]
types:
  analytical: {label: a}
  creative: {label: c}
  social: {label: s}
  practical: {label: p}
`)

	_, err := NewContentRepository(dir)
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestNewContentRepositoryRejectsMissingType(t *testing.T) {
	dir := copyData(t, QuizFile, `
questions:
  - id: 1
    question: "q"
    options: ["a", "b", "c", "d"]
types:
  analytical: {label: a}
`)

	_, err := NewContentRepository(dir)
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestNewContentRepositoryMissingFile(t *testing.T) {
	_, err := NewContentRepository(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), CareersFile)
}

func TestNewContentRepositoryMalformedJSON(t *testing.T) {
	dir := copyData(t, CareersFile, `{"careers": [`)

	_, err := NewContentRepository(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")
}
