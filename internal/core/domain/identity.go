package domain

import "errors"

var ErrForbidden = errors.New("access forbidden")

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	UserID   string
	Username string
	IsAdmin  bool
}

// CanMutate reports whether the identity may modify or delete a resource
// owned by ownerID. Admins may mutate anything.
func (i Identity) CanMutate(ownerID string) bool {
	if ownerID == "" {
		return false
	}
	return i.UserID == ownerID || i.IsAdmin
}
