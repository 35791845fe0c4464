package postgres

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	createTableRe = regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\n\);`)
	insertRe      = regexp.MustCompile(`INSERT INTO (\w+) \(([^)]+)\)`)
	columnSplitRe = regexp.MustCompile(`\s*,\s*`)
)

// TestEngagementSchemaColumns cross-checks every INSERT in the
// engagement repository against the table definitions in the shipped
// migration, so a renamed column cannot slip past until runtime.
func TestEngagementSchemaColumns(t *testing.T) {
	schema, err := os.ReadFile("../../../migrations/schema.sql")
	require.NoError(t, err)
	source, err := os.ReadFile("engagement_repo.go")
	require.NoError(t, err)

	tables := map[string]string{}
	for _, m := range createTableRe.FindAllStringSubmatch(string(schema), -1) {
		tables[m[1]] = m[2]
	}
	require.Contains(t, tables, "saved_initiatives")
	require.Contains(t, tables, "initiative_applications")
	require.Contains(t, tables, "initiative_views")

	inserts := insertRe.FindAllStringSubmatch(string(source), -1)
	require.NotEmpty(t, inserts)

	for _, m := range inserts {
		table, body := m[1], tables[m[1]]
		require.Contains(t, tables, table)
		for _, col := range columnSplitRe.Split(m[2], -1) {
			colRe := regexp.MustCompile(`(?m)^\s*` + col + `\s`)
			assert.Regexp(t, colRe, body, "column %s.%s missing from migration", table, col)
		}
	}
}
