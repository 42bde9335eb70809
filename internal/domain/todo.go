package domain

import "time"

// Domain entity. Does not depend on Gin, Postgres or the upstream clients.
// ID and CreatedAt are assigned by the store; CreatedAt is the sole
// ordering key for listings.
type Todo struct {
	ID        int64
	Title     string
	Completed bool
	CreatedAt time.Time
}
