package shell

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		sysEnv    []string
		overrides map[string]string
		expected  []string
	}{
		{
			name:     "no overrides",
			sysEnv:   []string{"USER=test", "PATH=/bin"},
			expected: []string{"USER=test", "PATH=/bin"},
		},
		{
			name:      "override and add",
			sysEnv:    []string{"USER=test", "FORCE_COLOR=1"},
			overrides: map[string]string{"FORCE_COLOR": "0", "NO_COLOR": "1"},
			expected:  []string{"USER=test", "FORCE_COLOR=0", "NO_COLOR=1"},
		},
		{
			name:      "malformed entries dropped",
			sysEnv:    []string{"BROKEN", "USER=test"},
			overrides: map[string]string{"A": "b"},
			expected:  []string{"USER=test", "A=b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeEnvironment(tt.sysEnv, tt.overrides)
			slices.Sort(got)
			slices.Sort(tt.expected)
			assert.Equal(t, tt.expected, got)
		})
	}
}
