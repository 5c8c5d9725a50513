package repository

import (
	"strings"

	"gorm.io/gorm"

	apperr "meatmarket/internal/errors"
	"meatmarket/internal/model"
)

// BuildSetClause turns a partial update into the body of an SQL SET clause
// and its positional values. Keys found in columns are renamed, others are
// used as the column name unchanged. quote wraps each column name and may be
// nil.
//
//	BuildSetClause(Fields{{"firstName", "Aliya"}, {"age", 32}},
//		map[string]string{"firstName": "first_name"}, nil)
//	// => `first_name = ?, age = ?`, ["Aliya", 32]
func BuildSetClause(fields model.Fields, columns map[string]string, quote func(string) string) (string, []interface{}, error) {
	if len(fields) == 0 {
		return "", nil, apperr.BadRequest("No data provided")
	}

	setCols := make([]string, 0, len(fields))
	values := make([]interface{}, 0, len(fields))
	for _, f := range fields {
		col, ok := columns[f.Key]
		if !ok {
			col = f.Key
		}
		if quote != nil {
			col = quote(col)
		}
		setCols = append(setCols, col+" = ?")
		values = append(values, f.Value)
	}

	return strings.Join(setCols, ", "), values, nil
}

// dialectQuote quotes identifiers the way the connected database expects.
func dialectQuote(db *gorm.DB) func(string) string {
	return func(name string) string {
		return db.Statement.Quote(name)
	}
}

// updateColumns runs UPDATE table SET ... WHERE <where> with the partial
// update applied. It does not check that a row matched.
func updateColumns(tx *gorm.DB, table string, fields model.Fields, columns map[string]string, where string, args ...interface{}) error {
	setCols, values, err := BuildSetClause(fields, columns, dialectQuote(tx))
	if err != nil {
		return err
	}
	sql := "UPDATE " + table + " SET " + setCols + " WHERE " + where
	return tx.Exec(sql, append(values, args...)...).Error
}
