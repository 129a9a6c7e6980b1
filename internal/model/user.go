package model

import "time"

type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

type AuditEntry struct {
	ID        int64
	Actor     string
	Action    string
	Timestamp time.Time
}
