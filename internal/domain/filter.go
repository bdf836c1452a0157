package domain

import "github.com/google/uuid"

// ChangeFilter narrows change record listings.
// Nil fields mean "any".
type ChangeFilter struct {
	Status   *ChangeStatus
	AuthorID *uuid.UUID
	Limit    int
	Offset   int
}

// MovieFilter narrows catalog listings. Query matches title, original title
// and director (case-insensitive substring). Genre matches any assigned tag.
type MovieFilter struct {
	Query  string
	Genre  string
	Year   *int
	Limit  int
	Offset int
}
