package domain

// MemberRole is the role a user holds within a collection. It is derived, not
// stored: the collection's owner_id decides who the owner is.
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleMember MemberRole = "member"
)

// BirthdayFormat is the date-only layout used for member birthdays.
const BirthdayFormat = "2006-01-02"
