package domain

// UserID identifies a library user. Users are owned by an external system;
// the lending service only references them.
type UserID int64
