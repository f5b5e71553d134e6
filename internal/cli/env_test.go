package cli

// Test Plan for env fixture:
// - printEnv with no pattern prints every variable in order
// - printEnv filters variable names with a glob pattern
// - printEnv matches names only, never values
// - printEnv rejects malformed glob patterns

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintEnv(t *testing.T) {
	environ := []string{
		"TM_ROOT=/work",
		"PATH=/usr/bin",
		"TM_STACK=app",
		"HOME=/home/u",
		"WEIRD=TM_VALUE",
	}

	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{
			name:    "no pattern prints everything",
			pattern: "",
			want:    "TM_ROOT=/work\nPATH=/usr/bin\nTM_STACK=app\nHOME=/home/u\nWEIRD=TM_VALUE\n",
		},
		{
			name:    "prefix glob",
			pattern: "TM_*",
			want:    "TM_ROOT=/work\nTM_STACK=app\n",
		},
		{
			name:    "exact name",
			pattern: "HOME",
			want:    "HOME=/home/u\n",
		},
		{
			name:    "pattern applies to names not values",
			pattern: "*VALUE*",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, printEnv(&out, environ, tt.pattern))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestPrintEnv_BadPattern(t *testing.T) {
	var out bytes.Buffer
	err := printEnv(&out, []string{"A=1"}, "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compiling pattern")
	assert.Empty(t, out.String())
}
