// Package dbcheck provides Checker implementations for the database
// existence checks declared on validation rules.
//
// Postgres answers "ifexist"/"ifnotexist" with an EXISTS query built from
// the check descriptor's entity and field (or a custom query), Redis with
// set membership keyed by entity. Both treat connectivity problems as
// infrastructure errors, which the pipeline surfaces as an aborted run
// rather than a field error.
//
// Connection settings can be parsed from the environment (a .env file is
// honored when present):
//
//	checker, err := dbcheck.NewPostgresFromEnv(ctx)
package dbcheck
