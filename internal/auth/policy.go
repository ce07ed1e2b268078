package auth

import "miniblog/internal/model"

// Policy derives permissions from the current user. A nil user means the
// request is anonymous. Every predicate is a pure function; services consult
// the policy before touching storage.

// IsAuthenticated reports whether a user is logged in.
func IsAuthenticated(u *model.User) bool {
	return u != nil
}

// IsAdmin reports whether the user exists and carries the admin flag.
func IsAdmin(u *model.User) bool {
	return u != nil && u.IsAdmin
}

// CanPost reports whether the user may author posts. Any logged-in user may.
func CanPost(u *model.User) bool {
	return IsAuthenticated(u)
}

// CanComment reports whether the user may comment. Anonymous commenting is
// permitted, so this always holds.
func CanComment(u *model.User) bool {
	return true
}

// CanModerate reports whether the user may delete users, posts and comments.
// All deletions are admin-only; there is no owner-can-delete path.
func CanModerate(u *model.User) bool {
	return IsAdmin(u)
}
