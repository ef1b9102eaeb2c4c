package main

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appmigrations "github.com/lemerle/medassist/migrations"
)

type fakeMigrator struct {
	upErr   error
	steps   int
	forced  int
	version uint
	verErr  error
}

func (f *fakeMigrator) Up() error                    { return f.upErr }
func (f *fakeMigrator) Steps(n int) error            { f.steps = n; return nil }
func (f *fakeMigrator) Force(v int) error            { f.forced = v; return nil }
func (f *fakeMigrator) Version() (uint, bool, error) { return f.version, false, f.verErr }

func TestRunCommands(t *testing.T) {
	t.Run("up treats no change as success", func(t *testing.T) {
		msg, err := run(&fakeMigrator{upErr: migrate.ErrNoChange}, nil)
		require.NoError(t, err)
		assert.Equal(t, "migrations complete", msg)
	})

	t.Run("up surfaces failures", func(t *testing.T) {
		_, err := run(&fakeMigrator{upErr: errors.New("dirty database")}, []string{"up"})
		assert.Error(t, err)
	})

	t.Run("down rolls back the requested steps", func(t *testing.T) {
		m := &fakeMigrator{}
		_, err := run(m, []string{"down", "2"})
		require.NoError(t, err)
		assert.Equal(t, -2, m.steps)
	})

	t.Run("down rejects bad counts", func(t *testing.T) {
		_, err := run(&fakeMigrator{}, []string{"down", "zero"})
		assert.Error(t, err)
	})

	t.Run("force sets version", func(t *testing.T) {
		m := &fakeMigrator{}
		_, err := run(m, []string{"force", "3"})
		require.NoError(t, err)
		assert.Equal(t, 3, m.forced)
	})

	t.Run("version without migrations", func(t *testing.T) {
		msg, err := run(&fakeMigrator{verErr: migrate.ErrNilVersion}, []string{"version"})
		require.NoError(t, err)
		assert.Equal(t, "no migrations applied", msg)
	})

	t.Run("unknown command", func(t *testing.T) {
		_, err := run(&fakeMigrator{}, []string{"sideways"})
		assert.Error(t, err)
	})
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(appmigrations.FS, ".")
	require.NoError(t, err)

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, e := range entries {
		name := e.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	require.NotEmpty(t, ups)
	assert.Equal(t, ups, downs)

	schema, err := fs.ReadFile(appmigrations.FS, "000002_appointments.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(schema), "UNIQUE (appointment_date, appointment_time)")
}
