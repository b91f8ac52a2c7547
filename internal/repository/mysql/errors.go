package mysql

import (
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
)

const dupEntryCode = 1062

// isDuplicateEntry reports whether err is a unique-constraint rejection,
// which the toggle engine treats as "someone else already transitioned
// this edge" rather than a failure.
func isDuplicateEntry(err error) bool {
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == dupEntryCode
}
