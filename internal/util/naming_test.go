package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportFileName(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		want     string
	}{
		{"simple repo", "sevigo/repograph", "sevigo-repograph.png"},
		{"uppercase is lowered", "Sevigo/RepoGraph", "sevigo-repograph.png"},
		{"special characters stripped", "owner/re po!?", "owner-repo.png"},
		{"empty input falls back", "!!!", "diagram.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExportFileName(tt.fullName))
		})
	}
}

func TestExportFileNameLength(t *testing.T) {
	name := ExportFileName("owner/" + strings.Repeat("a", 400))
	assert.LessOrEqual(t, len(name), 255)
	assert.True(t, strings.HasSuffix(name, ".png"))
}
