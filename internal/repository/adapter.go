package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// DBTX is the part of *pgxpool.Pool the Adapter needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Adapter runs schema driven statements and returns rows as JSON arrays.
type Adapter struct {
	db DBTX
}

func NewAdapter(db DBTX) *Adapter {
	return &Adapter{db: db}
}

// Insert writes one row holding every schema column.
func (a *Adapter) Insert(ctx context.Context, schema Schema, fields map[string]any) error {
	query, args, err := schema.insertSQL(fields)
	if err != nil {
		return err
	}

	if _, err := a.db.Exec(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "insert into %s", schema.Table)
	}
	return nil
}

// SelectByKey returns a JSON array holding zero or one row.
func (a *Adapter) SelectByKey(ctx context.Context, schema Schema, key any) (json.RawMessage, error) {
	return a.query(ctx, schema, schema.selectByKeySQL(), key)
}

// SelectAll returns every row as a JSON array, [] when the table is empty.
func (a *Adapter) SelectAll(ctx context.Context, schema Schema) (json.RawMessage, error) {
	return a.query(ctx, schema, schema.selectAllSQL())
}

// Update overwrites every non-key column of the row matching the key field.
// It returns the number of rows changed.
func (a *Adapter) Update(ctx context.Context, schema Schema, fields map[string]any) (int64, error) {
	query, args, err := schema.updateSQL(fields)
	if err != nil {
		return 0, err
	}

	tag, err := a.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrapf(err, "update %s", schema.Table)
	}
	return tag.RowsAffected(), nil
}

// Delete removes the row matching key and returns the number of rows removed.
func (a *Adapter) Delete(ctx context.Context, schema Schema, key any) (int64, error) {
	tag, err := a.db.Exec(ctx, schema.deleteSQL(), key)
	if err != nil {
		return 0, errors.Wrapf(err, "delete from %s", schema.Table)
	}
	return tag.RowsAffected(), nil
}

func (a *Adapter) query(ctx context.Context, schema Schema, query string, args ...any) (json.RawMessage, error) {
	rows, err := a.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "select from %s", schema.Table)
	}

	// CollectRows closes rows on every path.
	records, err := pgx.CollectRows(rows, rowToRecord)
	if err != nil {
		return nil, errors.Wrapf(err, "collect %s rows", schema.Table)
	}

	if records == nil {
		records = []map[string]any{}
	}

	out, err := json.Marshal(records)
	if err != nil {
		return nil, errors.Wrapf(err, "encode %s rows", schema.Table)
	}
	return out, nil
}

// rowToRecord keys the current row's values by column name.
func rowToRecord(row pgx.CollectableRow) (map[string]any, error) {
	values, err := row.Values()
	if err != nil {
		return nil, err
	}

	fields := row.FieldDescriptions()
	record := make(map[string]any, len(fields))
	for i, fd := range fields {
		if i < len(values) {
			record[fd.Name] = values[i]
		}
	}
	return record, nil
}
