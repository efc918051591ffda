package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewTutorialConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
tutorials:
  - name: option-pricing
    numbers:
      spot: { default: 100, min: 50, max: 200, step: 1 }
  - name: vwap
    numbers:
      basePrice: { default: 100, min: 10, max: 500, step: 1 }
    enums:
      marketCondition:
        default: mixed
        values: [trending, choppy, mixed]
`)

	cfgs, err := NewTutorialConfigFromYAML(path)
	require.NoError(t, err)
	require.Len(t, cfgs, 2)

	assert.Equal(t, "option-pricing", cfgs[0].Name())
	spot := cfgs[0].NumberParams()["spot"]
	assert.Equal(t, 100.0, spot.Default)
	assert.Equal(t, 50.0, spot.Min)
	assert.Equal(t, 200.0, spot.Max)

	cond := cfgs[1].EnumParams()["marketCondition"]
	assert.Equal(t, "mixed", cond.Default)
	assert.Equal(t, []string{"trending", "choppy", "mixed"}, cond.Values)
}

func TestNewTutorialConfigRejectsBadRange(t *testing.T) {
	path := writeConfig(t, `
tutorials:
  - name: broken
    numbers:
      spot: { default: 300, min: 50, max: 200, step: 1 }
`)

	_, err := NewTutorialConfigFromYAML(path)
	require.Error(t, err)
}

func TestNewTutorialConfigRejectsEmpty(t *testing.T) {
	path := writeConfig(t, "tutorials: []\n")

	_, err := NewTutorialConfigFromYAML(path)
	require.Error(t, err)

	_, err = NewTutorialConfigFromYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
