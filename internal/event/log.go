package event

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"
)

// LogRepo appends published events to the event_log table. It is attached
// as a bus subscriber when the gateway runs with a SQL backend.
type LogRepo struct{ db *sql.DB }

func NewLogRepo(db *sql.DB) *LogRepo { return &LogRepo{db: db} }

func (r *LogRepo) Append(e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	key := e.Email
	if e.CourseID != "" {
		key = e.CourseID
	}
	_, err = r.db.Exec(
		`INSERT INTO event_log (typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		string(e.Type), key, string(data), time.Now().Unix())
	return err
}

// Handler adapts the repo to the bus; append failures are logged, never
// surfaced to the publisher.
func (r *LogRepo) Handler() Handler {
	return func(e Event) {
		if err := r.Append(e); err != nil {
			log.Printf("event: append %s: %v", e.Type, err)
		}
	}
}
