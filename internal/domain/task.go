package domain

import "time"

type Task struct {
	ID          int64     `db:"id" json:"id"`
	Description string    `db:"task" json:"task"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
