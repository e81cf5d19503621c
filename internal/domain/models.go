package domain

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UUIDList is a slice of UUIDs stored as a PostgreSQL uuid[] column.
type UUIDList []uuid.UUID

// Value implements driver.Valuer.
func (l UUIDList) Value() (driver.Value, error) {
	return pq.GenericArray{A: []uuid.UUID(l)}.Value()
}

// Scan implements sql.Scanner.
func (l *UUIDList) Scan(src interface{}) error {
	return pq.GenericArray{A: (*[]uuid.UUID)(l)}.Scan(src)
}

// Contains reports whether id is present in the list.
func (l UUIDList) Contains(id uuid.UUID) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Collection represents a named group of users sharing photos.
// The owner is always present in Members, and RelatedCollections mirrors the
// relation join table on both sides.
type Collection struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	Name               string    `db:"name" json:"name"`
	OwnerID            uuid.UUID `db:"owner_id" json:"owner_id"`
	Members            UUIDList  `db:"members" json:"members"`
	RelatedCollections UUIDList  `db:"related_collections" json:"related_collections"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

// User represents an account known to the user directory.
type User struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Email       string     `db:"email" json:"email"`
	FirstName   string     `db:"first_name" json:"first_name"`
	LastName    string     `db:"last_name" json:"last_name"`
	Birthday    *time.Time `db:"birthday" json:"birthday,omitempty"`
	Collections UUIDList   `db:"collections" json:"collections"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// MemberRow is the raw result of joining collection_members to users.
type MemberRow struct {
	ID        uuid.UUID  `db:"id"`
	Email     string     `db:"email"`
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	Birthday  *time.Time `db:"birthday"`
	JoinedAt  time.Time  `db:"joined_at"`
}

// Member is a collection member with its derived role, as returned to callers.
// Birthday is normalized to a date-only string and omitted when absent.
type Member struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      MemberRole `json:"role"`
	Birthday  string     `json:"birthday,omitempty"`
	JoinedAt  time.Time  `json:"joined_at"`
}

// RelatedCollection is a summary of a collection reachable through the
// relation graph, with a derived member count.
type RelatedCollection struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	MemberCount int       `db:"member_count" json:"member_count"`
}

// Image stores metadata about a photo whose blobs live in object storage.
// Empty keys mean the corresponding blob was never written.
type Image struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UploadedBy   uuid.UUID `db:"uploaded_by" json:"uploaded_by"`
	FileName     string    `db:"file_name" json:"file_name"`
	ContentType  string    `db:"content_type" json:"content_type"`
	FileSize     int64     `db:"file_size" json:"file_size"`
	OriginalKey  string    `db:"original_key" json:"original_key"`
	ThumbnailKey string    `db:"thumbnail_key" json:"thumbnail_key"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
