// Package queries contains the read side: dashboard statistics, the
// recycling report, collection point inventory, driver delivery lists and
// batch impact. Queries are built with squirrel and run through GORM without
// touching the aggregates.
package queries

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

// psql uses ? placeholders; GORM rewrites them for the postgres driver.
func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func countRows(ctx context.Context, db *gorm.DB, b sq.SelectBuilder) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}

	var n int64
	if err := db.WithContext(ctx).Raw(query, args...).Row().Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// countByColumn groups table rows by an int column.
func countByColumn(ctx context.Context, db *gorm.DB, table, column string, where sq.Sqlizer) (map[int]int64, error) {
	b := psql().Select(column, "COUNT(*)").From(table).GroupBy(column)
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]int64)
	for rows.Next() {
		var key int
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = n
	}

	return out, rows.Err()
}
