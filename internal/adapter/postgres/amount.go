package postgres

import (
	"math"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/bullion-registry/internal/domain"
)

// Builder is the squirrel statement builder for PostgreSQL placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ToBigint converts an unsigned amount to a BIGINT column value.
// Amounts above math.MaxInt64 cannot be stored and fail with ErrOverflow.
func ToBigint(v uint64) (int64, error) {
	if v > math.MaxInt64 {
		return 0, domain.ErrOverflow
	}
	return int64(v), nil
}

// FromBigint converts a BIGINT column value back to an unsigned amount.
// Columns carry a non-negative CHECK, so a negative value is corruption.
func FromBigint(v int64) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}
