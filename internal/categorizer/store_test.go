package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"abenov/kaspi-import/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `rules:
  - category: Подписки
    keywords: [NETFLIX, SPOTIFY]
  - category: Спорт
    keywords:
      - FITNESS
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "Подписки", rules[0].Category)
	assert.Equal(t, []string{"NETFLIX", "SPOTIFY"}, rules[0].Keywords)
	assert.Equal(t, "Спорт", rules[1].Category)
}

func TestLoadRules_MissingFileIsNotAnError(t *testing.T) {
	rules, err := LoadRules(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestLoadRules_EmptyPath(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestLoadRules_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules: [broken"), 0600))

	_, err := LoadRules(path)
	assert.Error(t, err)
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "rules:\n  - category: Подписки\n    keywords: [NETFLIX]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	c, err := NewFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Подписки", c.Categorize("NETFLIX.COM", models.KindExpense))
	assert.Equal(t, "Продукты", c.Categorize("MAGNUM", models.KindExpense))
}
