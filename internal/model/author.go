package model

// Author identifies who wrote a comment: either a registered user or an
// anonymous guest. At most one field is set; a zero Author is an unnamed guest.
type Author struct {
	UserID    *uint
	GuestName *string
}

// RegisteredAuthor builds an Author for a registered user.
func RegisteredAuthor(userID uint) Author {
	return Author{UserID: &userID}
}

// GuestAuthor builds an Author for an anonymous commenter. The display name
// is stored verbatim and may be empty.
func GuestAuthor(name string) Author {
	return Author{GuestName: &name}
}

// IsGuest reports whether the author is anonymous.
func (a Author) IsGuest() bool {
	return a.UserID == nil
}
