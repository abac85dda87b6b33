package postgres

// DefaultPlayerID scopes progress rows when no player id is configured
const DefaultPlayerID = "local"

// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
const PgErrorCodeUniqueViolation = "23505"
