package cliconfig

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"ROWREDUCER_PLACES":      "4",
				"ROWREDUCER_STEPS":       "false",
				"ROWREDUCER_COLOR":       "1",
				"ROWREDUCER_PIVOT_COLOR": "#00ff00",
				"ROWREDUCER_LOG_LEVEL":   "debug",
				"ROWREDUCER_WORKERS":     "8",
			},
			changed: map[string]bool{},
			expected: Config{
				Places:     4,
				ShowSteps:  false,
				Color:      true,
				PivotColor: "#00ff00",
				LogLevel:   "debug",
				Workers:    8,
			},
		},
		{
			name:    "respects changed flags",
			envVars: map[string]string{"ROWREDUCER_PLACES": "4", "ROWREDUCER_WORKERS": "8"},
			changed: map[string]bool{FlagPlaces: true},
			expected: func() Config {
				c := DefaultConfig()
				c.Workers = 8
				return c
			}(),
		},
		{
			name:    "zero places is kept",
			envVars: map[string]string{"ROWREDUCER_PLACES": "0"},
			changed: map[string]bool{},
			expected: func() Config {
				c := DefaultConfig()
				c.Places = 0
				return c
			}(),
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"ROWREDUCER_WORKERS": "many"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := DefaultConfig()
			err := ApplyEnvConfig(&cfg, tt.changed)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, cfg)
		})
	}
}
