package interfaces

import "context"

// AuthService is the session collaborator consulted once when a wizard
// session starts. The core never manages sessions itself; it only needs to
// know who is building the page.
type AuthService interface {
	CurrentUserID(ctx context.Context) (string, error)
	CurrentProfile(ctx context.Context) (*Profile, error)
}

// Profile carries the minimal identity details a published page records.
type Profile struct {
	UserID      string
	DisplayName string
	Handle      string
}
