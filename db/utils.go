package db

import (
	"errors"

	"github.com/lib/pq"
)

// IsNonUniqueErr reports whether err is a postgres unique constraint
// violation (code 23505).
func IsNonUniqueErr(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
