package repository

import "time"

const dateLayout = "2006-01-02"

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
