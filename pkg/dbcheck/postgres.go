package dbcheck

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/inputkit"
)

// identifierRegex restricts entity and field names to plain SQL
// identifiers; anything else would require quoting and invites injection
// through rule documents.
var identifierRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

var ErrInvalidIdentifier = errors.New("invalid entity or field identifier")

// Querier is the subset of the pgx pool API the checker needs.
// *pgxpool.Pool satisfies it; tests substitute a fake.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres runs existence checks against a PostgreSQL database.
type Postgres struct {
	db Querier
}

// NewPostgres wraps an existing pool or connection.
func NewPostgres(db Querier) *Postgres {
	return &Postgres{db: db}
}

// Check reports whether the existence condition holds. With a custom query
// the value is bound as $1 (descriptor params follow) and the query must
// return a single boolean; otherwise an EXISTS probe is built from the
// descriptor's entity and field.
func (p *Postgres) Check(ctx context.Context, req inputkit.CheckRequest) (bool, error) {
	exists, err := p.exists(ctx, req)
	if err != nil {
		return false, err
	}
	if req.Name == "ifnotexist" {
		return !exists, nil
	}
	return exists, nil
}

func (p *Postgres) exists(ctx context.Context, req inputkit.CheckRequest) (bool, error) {
	check := req.Check

	if check.Query != "" {
		args := append([]any{req.Value}, check.Params...)
		var exists bool
		if err := p.db.QueryRow(ctx, check.Query, args...).Scan(&exists); err != nil {
			return false, fmt.Errorf("existence query failed: %w", err)
		}
		return exists, nil
	}

	if !identifierRegex.MatchString(check.Entity) || !identifierRegex.MatchString(check.Field) {
		return false, fmt.Errorf("%w: entity %q field %q", ErrInvalidIdentifier, check.Entity, check.Field)
	}

	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", check.Entity, check.Field)
	var exists bool
	if err := p.db.QueryRow(ctx, query, req.Value).Scan(&exists); err != nil {
		return false, fmt.Errorf("existence query failed: %w", err)
	}
	return exists, nil
}
