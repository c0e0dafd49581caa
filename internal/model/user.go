// Package model defines the data types shared across handlers, repositories
// and services.
package model

import "time"

// User is a registered account.  The password hash is internal state and is
// never serialized; clients only ever see a Summary.
type User struct {
	ID           uint64
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserSummary is the public projection of a User returned by the auth
// endpoints.
type UserSummary struct {
	ID       uint64 `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Summary strips the credential material from a User.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, FullName: u.FullName, Email: u.Email}
}
