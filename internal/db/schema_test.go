package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingProvider struct{ err error }

func (p failingProvider) Acquire(ctx context.Context) (Conn, error) { return nil, p.err }

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	m, err := Connect(sqliteConfig(t, false))
	require.NoError(t, err)
	ctx := context.Background()

	assert.True(t, EnsureSchema(ctx, m, m.Dialect()))
	assert.True(t, EnsureSchema(ctx, m, m.Dialect()))

	conn, err := m.Acquire(ctx)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.ExecContext(ctx, "INSERT INTO tasks (task) VALUES (?)", "probe")
	require.NoError(t, err)

	rows, err := conn.QueryContext(ctx, "SELECT id, task, created_at FROM tasks")
	require.NoError(t, err)
	defer rows.Close()
	require.True(t, rows.Next())
	var (
		id      int64
		task    string
		created any
	)
	require.NoError(t, rows.Scan(&id, &task, &created))
	assert.Equal(t, int64(1), id)
	assert.Equal(t, "probe", task)
	assert.NotNil(t, created, "created_at defaults to insertion time")
}

func TestEnsureSchemaSwallowsErrors(t *testing.T) {
	p := failingProvider{err: &ConnectionError{Attempts: 5, Err: errors.New("refused")}}

	assert.NotPanics(t, func() {
		assert.False(t, EnsureSchema(context.Background(), p, MySQL))
	})
}

func TestCreateSchemaReportsErrors(t *testing.T) {
	p := failingProvider{err: errors.New("refused")}
	err := CreateSchema(context.Background(), p, MySQL)
	assert.EqualError(t, err, "refused")
}

func TestCreateSchemaWrapsStatementFailure(t *testing.T) {
	m, err := Connect(sqliteConfig(t, false))
	require.NoError(t, err)

	bad := SQLite
	bad.createTasks = "CREATE TABLE ("
	err = CreateSchema(context.Background(), m, bad)
	require.Error(t, err)
	assert.True(t, IsStorageError(err))
}
