package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-d", "vitrine.db", "-x", "other"},
			allowed: []string{"-d"},
			want:    []string{"-d", "vitrine.db"},
		},
		{
			name:    "equals form",
			args:    []string{"--database=vitrine.db", "-x"},
			allowed: []string{"--database"},
			want:    []string{"--database=vitrine.db"},
		},
		{
			name:    "unknown equals form is dropped",
			args:    []string{"--other=1"},
			allowed: []string{"-d"},
			want:    []string{},
		},
		{
			name:    "flag followed by another flag has no value",
			args:    []string{"-d", "-l", "300"},
			allowed: []string{"-d"},
			want:    []string{"-d"},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-d"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
