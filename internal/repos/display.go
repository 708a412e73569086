package repos

import (
	"time"

	"github.com/dustin/go-humanize"
)

const sqliteTime = "2006-01-02 15:04:05"

// displayTime renders a CURRENT_TIMESTAMP value as "12 minutes ago".
func displayTime(ts string) string {
	t, err := time.ParseInLocation(sqliteTime, ts, time.UTC)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, ts); err != nil {
			return ts
		}
	}
	return humanize.Time(t)
}
