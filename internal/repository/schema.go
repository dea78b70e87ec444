package repository

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidSchema = errors.New("invalid schema")
)

// Schema describes a table the Adapter can work on.
//
// Every identifier that reaches SQL comes from a Schema and is quoted. Values
// are always bound as $n parameters.
type Schema struct {
	Table   string
	Key     string
	Columns []string
}

// Validate checks that the schema is usable: a table, at least one column and
// a key that is one of the columns.
func (s Schema) Validate() error {
	if s.Table == "" || len(s.Columns) == 0 {
		return errors.Wrap(ErrInvalidSchema, "table and columns are required")
	}
	if !slices.Contains(s.Columns, s.Key) {
		return errors.Wrapf(ErrInvalidSchema, "key %q is not a column of %s", s.Key, s.Table)
	}
	return nil
}

func (s Schema) table() string {
	return pgx.Identifier(strings.Split(s.Table, ".")).Sanitize()
}

func (s Schema) column(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func (s Schema) columnList() string {
	cols := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		cols[i] = s.column(c)
	}
	return strings.Join(cols, ", ")
}

// checkFields rejects names outside the schema and requires every column.
func (s Schema) checkFields(fields map[string]any) error {
	for name := range fields {
		if !slices.Contains(s.Columns, name) {
			return errors.Wrapf(ErrUnknownColumn, "%s.%s", s.Table, name)
		}
	}
	for _, c := range s.Columns {
		if _, ok := fields[c]; !ok {
			return errors.Wrapf(ErrMissingColumn, "%s.%s", s.Table, c)
		}
	}
	return nil
}

func (s Schema) insertSQL(fields map[string]any) (string, []any, error) {
	if err := s.checkFields(fields); err != nil {
		return "", nil, err
	}

	placeholders := make([]string, len(s.Columns))
	args := make([]any, len(s.Columns))
	for i, c := range s.Columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = fields[c]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.table(), s.columnList(), strings.Join(placeholders, ", "))

	return query, args, nil
}

func (s Schema) selectByKeySQL() string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		s.columnList(), s.table(), s.column(s.Key))
}

func (s Schema) selectAllSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		s.columnList(), s.table(), s.column(s.Key))
}

// updateSQL sets every non-key column and matches on the key, which is bound last.
func (s Schema) updateSQL(fields map[string]any) (string, []any, error) {
	if err := s.checkFields(fields); err != nil {
		return "", nil, err
	}

	sets := make([]string, 0, len(s.Columns)-1)
	args := make([]any, 0, len(s.Columns))
	for _, c := range s.Columns {
		if c == s.Key {
			continue
		}
		args = append(args, fields[c])
		sets = append(sets, fmt.Sprintf("%s = $%d", s.column(c), len(args)))
	}
	args = append(args, fields[s.Key])

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		s.table(), strings.Join(sets, ", "), s.column(s.Key), len(args))

	return query, args, nil
}

func (s Schema) deleteSQL() string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1", s.table(), s.column(s.Key))
}
