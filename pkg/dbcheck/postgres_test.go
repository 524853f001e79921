package dbcheck_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit"
	"github.com/dmitrymomot/inputkit/pkg/dbcheck"
)

type fakeRow struct {
	exists bool
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if b, ok := dest[0].(*bool); ok {
		*b = r.exists
	}
	return nil
}

type fakeQuerier struct {
	row     fakeRow
	gotSQL  string
	gotArgs []any
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.gotSQL = sql
	q.gotArgs = args
	return q.row
}

func TestPostgresCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("builds an exists probe from the descriptor", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{exists: true}}
		p := dbcheck.NewPostgres(q)

		pass, err := p.Check(ctx, inputkit.CheckRequest{
			Name:  "ifexist",
			Value: "SAVE10",
			Check: inputkit.Check{Entity: "coupons", Field: "code"},
		})
		require.NoError(t, err)
		assert.True(t, pass)
		assert.Equal(t, "SELECT EXISTS (SELECT 1 FROM coupons WHERE code = $1)", q.gotSQL)
		assert.Equal(t, []any{"SAVE10"}, q.gotArgs)
	})

	t.Run("ifnotexist negates the probe", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{exists: true}}
		p := dbcheck.NewPostgres(q)

		pass, err := p.Check(ctx, inputkit.CheckRequest{
			Name:  "ifnotexist",
			Value: "john@example.com",
			Check: inputkit.Check{Entity: "users", Field: "email"},
		})
		require.NoError(t, err)
		assert.False(t, pass)

		q.row.exists = false
		pass, err = p.Check(ctx, inputkit.CheckRequest{
			Name:  "ifnotexist",
			Value: "john@example.com",
			Check: inputkit.Check{Entity: "users", Field: "email"},
		})
		require.NoError(t, err)
		assert.True(t, pass)
	})

	t.Run("custom query binds the value first", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{exists: true}}
		p := dbcheck.NewPostgres(q)

		_, err := p.Check(ctx, inputkit.CheckRequest{
			Name:  "ifexist",
			Value: "john",
			Check: inputkit.Check{
				Query:  "SELECT EXISTS (SELECT 1 FROM users WHERE name = $1 AND tenant = $2)",
				Params: []any{"acme"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []any{"john", "acme"}, q.gotArgs)
	})

	t.Run("rejects unsafe identifiers", func(t *testing.T) {
		p := dbcheck.NewPostgres(&fakeQuerier{})

		_, err := p.Check(ctx, inputkit.CheckRequest{
			Name:  "ifexist",
			Value: "x",
			Check: inputkit.Check{Entity: "users; DROP TABLE users", Field: "email"},
		})
		assert.ErrorIs(t, err, dbcheck.ErrInvalidIdentifier)
	})

	t.Run("query failure surfaces as an error", func(t *testing.T) {
		q := &fakeQuerier{row: fakeRow{err: errors.New("connection refused")}}
		p := dbcheck.NewPostgres(q)

		_, err := p.Check(ctx, inputkit.CheckRequest{
			Name:  "ifexist",
			Value: "x",
			Check: inputkit.Check{Entity: "users", Field: "email"},
		})
		assert.Error(t, err)
	})
}
