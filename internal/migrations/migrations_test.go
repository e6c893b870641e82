package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedFilesArePaired(t *testing.T) {
	names, err := fs.Glob(files, "sql/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, n := range names {
		switch {
		case strings.HasSuffix(n, ".up.sql"):
			ups[strings.TrimSuffix(n, ".up.sql")] = true
		case strings.HasSuffix(n, ".down.sql"):
			downs[strings.TrimSuffix(n, ".down.sql")] = true
		default:
			t.Errorf("unexpected file %s", n)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestSourceReadsVersions(t *testing.T) {
	src, err := iofs.New(files, "sql")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.EqualValues(t, 1, first)

	next, err := src.Next(first)
	require.NoError(t, err)
	assert.EqualValues(t, 2, next)
}

func TestSchemaMatchesRepoColumns(t *testing.T) {
	b, err := fs.ReadFile(files, "sql/000002_create_expenses.up.sql")
	require.NoError(t, err)
	for _, col := range []string{"user_id", "title", "amount", "expense_date", "NUMERIC(15, 2)"} {
		assert.Contains(t, string(b), col)
	}
}
