package db

import "database/sql"

// DB wraps the sql handle so stores depend on this package
// rather than on database/sql directly.
type DB struct {
	*sql.DB
}
