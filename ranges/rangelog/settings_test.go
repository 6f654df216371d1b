package rangelog_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-lazy-ranges/ranges/rangelog"
)

const pipelineYAML = `
pipeline:
  trace:
    level: info
    stage: parsed
    sample_every: 100
  other: true
`

func TestFromSettingsYAML(t *testing.T) {
	t.Parallel()

	var settings map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(pipelineYAML), &settings))

	cfg, err := rangelog.FromSettings(settings, "pipeline.trace")
	require.NoError(t, err)
	assert.Equal(t, rangelog.Config{
		Level:       "info",
		Component:   "ranges",
		Stage:       "parsed",
		SampleEvery: 100,
	}, cfg)
}

func TestFromSettingsJSON(t *testing.T) {
	t.Parallel()

	var settings map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{"level":"warn","sample_every":5}`), &settings))

	cfg, err := rangelog.FromSettings(settings, "")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, 5, cfg.SampleEvery)

	empty, err := rangelog.FromSettings(map[string]any{}, "")
	require.NoError(t, err)
	assert.Equal(t, "debug", empty.Level)
}

func TestFromSettingsIntegerShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		val  any
	}{
		{name: "int", val: 7},
		{name: "int32", val: int32(7)},
		{name: "int64", val: int64(7)},
		{name: "uint8", val: uint8(7)},
		{name: "integral float", val: 7.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := rangelog.FromSettings(map[string]any{
				"t": map[string]any{"sample_every": tt.val},
			}, "t")
			require.NoError(t, err)
			assert.Equal(t, 7, cfg.SampleEvery)
		})
	}
}

func TestFromSettingsInterfaceKeyedSection(t *testing.T) {
	t.Parallel()

	settings := map[string]any{
		"t": map[any]any{"level": "warn", "sample_every": 2},
	}
	cfg, err := rangelog.FromSettings(settings, "t")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, 2, cfg.SampleEvery)
}

func TestFromSettingsErrors(t *testing.T) {
	t.Parallel()

	var settings map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(pipelineYAML), &settings))

	_, err := rangelog.FromSettings(settings, "pipeline.missing")
	require.ErrorIs(t, err, rangelog.ErrSettingsNotFound)

	_, err = rangelog.FromSettings(settings, "pipeline.other")
	require.ErrorIs(t, err, rangelog.ErrSettingsNotFound, "a scalar is not a section")

	_, err = rangelog.FromSettings(map[string]any{"level": 3}, "")
	require.ErrorIs(t, err, rangelog.ErrSettingType)
	assert.Contains(t, err.Error(), "level")

	for _, bad := range []any{1.5, 1e19, -1e19, uint64(1) << 63} {
		_, err = rangelog.FromSettings(map[string]any{"sample_every": bad}, "")
		require.ErrorIs(t, err, rangelog.ErrSettingType, "sample_every: %v", bad)
	}

	_, err = rangelog.FromSettings(map[string]any{"level": "chatty"}, "")
	require.ErrorIs(t, err, rangelog.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "rangelog.level")
}
