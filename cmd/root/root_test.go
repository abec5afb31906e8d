package root

import (
	"testing"

	"abenov/kaspi-import/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistentPreRun_AppliesConfiguration(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("KASPI_CSV_DELIMITER", ";")
	defer store.SetDelimiter(',')

	Cmd.PersistentPreRun(Cmd, nil)

	require.NotNil(t, Cfg)
	assert.Equal(t, "debug", Cfg.Log.Level)
	assert.Equal(t, ";", Cfg.CSV.Delimiter)
	assert.Equal(t, "debug", Log.GetLevel().String())
	assert.Equal(t, ';', store.Delimiter)
}
