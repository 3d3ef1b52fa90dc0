package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rengarcia/web-quality-skills/internal/skill/rules"
	"github.com/rengarcia/web-quality-skills/internal/skill/scanner"
)

// resetInitFlags restores the init command's flag state after a test.
func resetInitFlags(t *testing.T) {
	t.Helper()
	origDescription := initDescription
	origLicense := initLicense
	origVersion := initVersion
	origAuthor := initAuthor
	origForce := initForce
	t.Cleanup(func() {
		initDescription = origDescription
		initLicense = origLicense
		initVersion = origVersion
		initAuthor = origAuthor
		initForce = origForce
	})
}

func TestInitCommand_ScaffoldPassesValidation(t *testing.T) {
	resetState(t)
	resetInitFlags(t)
	root := t.TempDir()

	var buf bytes.Buffer
	err := runInitWithWriter(&buf, []string{"image-optimization", root})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `Created skill "image-optimization"`)

	// The scaffold must hold up under the strictest validation.
	pkgs, err := scanner.NewScanner().Scan(root)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	report := rules.NewEngine().ValidateAll(pkgs)
	assert.Empty(t, report.Issues)
	assert.True(t, report.Passed(true))
}

func TestInitCommand_WritesProvidedFields(t *testing.T) {
	resetState(t)
	resetInitFlags(t)
	root := t.TempDir()

	initDescription = `Run when asked to "audit SEO".`
	initLicense = "Apache-2.0"
	initVersion = "0.2.0"
	initAuthor = "jane"

	err := runInitWithWriter(io.Discard, []string{"seo-audit", root})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "seo-audit", "SKILL.md"))
	require.NoError(t, err)
	doc := string(data)

	assert.Contains(t, doc, "name: seo-audit")
	assert.Contains(t, doc, `Run when asked to "audit SEO".`)
	assert.Contains(t, doc, "license: Apache-2.0")
	assert.Contains(t, doc, "version: 0.2.0")
	assert.Contains(t, doc, "author: jane")

	// Companion directories come with the scaffold.
	for _, sub := range []string{"scripts", "references"} {
		info, err := os.Stat(filepath.Join(root, "seo-audit", sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestInitCommand_RejectsBadNames(t *testing.T) {
	resetState(t)
	resetInitFlags(t)
	root := t.TempDir()

	tests := []struct {
		name      string
		skillName string
		wantMsg   string
	}{
		{"uppercase", "Image-Optimization", "lowercase alphanumeric"},
		{"underscore", "image_optimization", "lowercase alphanumeric"},
		{"leading digit", "2fast", "lowercase alphanumeric"},
		{"leading hyphen", "-draft", "lowercase alphanumeric"},
		{"too long", strings.Repeat("a", 65), "at most 64 characters"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := runInitWithWriter(&buf, []string{tt.skillName, root})
			require.ErrorIs(t, err, errInitFailed)
			assert.Contains(t, buf.String(), tt.wantMsg)
		})
	}
}

func TestInitCommand_ExistingDocNeedsForce(t *testing.T) {
	resetState(t)
	resetInitFlags(t)
	root := t.TempDir()

	require.NoError(t, runInitWithWriter(io.Discard, []string{"alpha", root}))

	var buf bytes.Buffer
	err := runInitWithWriter(&buf, []string{"alpha", root})
	require.ErrorIs(t, err, errInitFailed)
	assert.Contains(t, buf.String(), "already exists")

	initForce = true
	require.NoError(t, runInitWithWriter(io.Discard, []string{"alpha", root}))
}
