package model

import "time"

// UserStatus is the review state of a publisher application.
type UserStatus string

const (
	// StatusPending means the application has not been reviewed yet.
	StatusPending UserStatus = "Pending"
	// StatusApproved means an admin accepted the application.
	StatusApproved UserStatus = "Approved"
	// StatusRejected means an admin declined the application.
	StatusRejected UserStatus = "Rejected"
)

// User represents a publisher applicant. Users are created from seed data
// at session start; only Status changes afterwards, and re-applying a
// status simply overwrites it. No history is kept.
type User struct {
	RequestedAt  time.Time
	ID           string
	Name         string
	Email        string
	Phone        string
	BusinessName string
	Status       UserStatus
}

// PartitionUsers splits users into pending, approved, and rejected groups
// with a single scan, preserving relative order within each group.
func PartitionUsers(users []User) (pending, approved, rejected []User) {
	for _, u := range users {
		switch u.Status {
		case StatusApproved:
			approved = append(approved, u)
		case StatusRejected:
			rejected = append(rejected, u)
		default:
			pending = append(pending, u)
		}
	}
	return pending, approved, rejected
}
