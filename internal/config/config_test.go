package config_test

import (
	"log/slog"
	"strconv"
	"testing"

	"github.com/katalvlaran/mat2/internal/config"
	"github.com/katalvlaran/mat2/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"MAT2_FORMAT":    " YAML ",
		"MAT2_PROMPT":    "never",
		"MAT2_LOG_LEVEL": "DEBUG",
		"MAT2_PRECISION": "4",
	})
	require.NoError(t, err)
	assert.Equal(t, config.FormatYAML, cfg.Format)
	assert.Equal(t, config.PromptNever, cfg.Prompt)
	assert.Equal(t, 4, cfg.Precision)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadFrom_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		environ map[string]string
		want    error
	}{
		{"format", map[string]string{"MAT2_FORMAT": "xml"}, config.ErrInvalidFormat},
		{"prompt", map[string]string{"MAT2_PROMPT": "sometimes"}, config.ErrInvalidPrompt},
		{"precision high", map[string]string{"MAT2_PRECISION": "18"}, config.ErrInvalidPrecision},
		{"precision negative", map[string]string{"MAT2_PRECISION": "-1"}, config.ErrInvalidPrecision},
		{"log level", map[string]string{"MAT2_LOG_LEVEL": "loud"}, config.ErrInvalidLogLevel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.LoadFrom(tc.environ)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadFrom_ParseError(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"MAT2_PRECISION": "two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

// TestValidate_PrecisionBound keeps the config bound in step with the
// rendering bound of the matrix package.
func TestValidate_PrecisionBound(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{"MAT2_PRECISION": strconv.Itoa(matrix.MaxPrecision)})
	require.NoError(t, err)
	assert.Equal(t, matrix.MaxPrecision, cfg.Precision)

	cfg.Precision = matrix.MaxPrecision + 1
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidPrecision)
}
