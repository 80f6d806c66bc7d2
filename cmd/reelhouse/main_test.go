package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	names := make([]string, 0)
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Subset(t, names, []string{"serve", "migrate", "version"})

	migrate, _, err := root.Find([]string{"migrate", "status"})
	require.NoError(t, err)
	assert.Equal(t, "status", migrate.Name())
}

func TestVersionCommand(t *testing.T) {
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "reelhouse dev"))
}

func TestWriteMigrationStatus(t *testing.T) {
	applied := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	statuses := []*goose.MigrationStatus{
		{
			Source:    &goose.Source{Type: goose.TypeSQL, Path: "00001_create_users.sql", Version: 1},
			State:     goose.StateApplied,
			AppliedAt: applied,
		},
		{
			Source: &goose.Source{Type: goose.TypeSQL, Path: "00002_create_favorites.sql", Version: 2},
			State:  goose.StatePending,
		},
	}

	var out bytes.Buffer
	require.NoError(t, writeMigrationStatus(&out, statuses))

	rendered := out.String()
	assert.Contains(t, rendered, "00001_create_users.sql")
	assert.Contains(t, rendered, "2026-10-01T12:00:00Z")
	assert.Contains(t, rendered, string(goose.StatePending))
}

func TestRenderTable_PadsShortRows(t *testing.T) {
	rendered := renderTable([]string{"A", "B"}, [][]string{{"only-a"}}, nil)

	assert.Contains(t, rendered, "only-a")
	assert.Empty(t, renderTable(nil, nil, nil))
}

func TestAppGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(appOptions()...))
}
