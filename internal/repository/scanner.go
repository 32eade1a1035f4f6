package repository

import (
	"fmt"
	"strings"
	"time"

	"todo_webapp/internal/domain"
)

// Scanner is implemented by *sql.Row and *sql.Rows
type Scanner interface {
	Scan(dest ...any) error
}

// Rows is the subset of *sql.Rows the scan helpers need
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanTask(s Scanner) (*domain.Task, error) {
	var t domain.Task
	if err := s.Scan(&t.ID, &t.Description, timestamp{&t.CreatedAt}); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTasks(rows Rows) ([]*domain.Task, error) {
	res := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05",
}

// timestamp decodes created_at whether the driver hands back time.Time
// (mysql with parseTime, pgx) or text (sqlite).
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.t = time.Time{}
		return nil
	case time.Time:
		*ts.t = v
		return nil
	case []byte:
		return ts.parse(string(v))
	case string:
		return ts.parse(v)
	default:
		return fmt.Errorf("unsupported created_at type %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t
			return nil
		}
	}
	return fmt.Errorf("cannot parse created_at %q", s)
}
