package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGenre(t *testing.T) {
	tests := []struct {
		name    string
		genre   string
		wantErr bool
	}{
		{name: "known genre", genre: "冒險 (Adventure)", wantErr: false},
		{name: "last genre in list", genre: "其他 (Other)", wantErr: false},
		{name: "chinese part only", genre: "冒險", wantErr: true},
		{name: "english part only", genre: "Adventure", wantErr: true},
		{name: "empty", genre: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateGenre(tt.genre)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown genre")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSynopsisExamplesNonEmpty(t *testing.T) {
	require.NotEmpty(t, synopsisExamples)
	for title, synopsis := range synopsisExamples {
		assert.NotEmpty(t, title)
		assert.NotEmpty(t, synopsis)
	}
}
