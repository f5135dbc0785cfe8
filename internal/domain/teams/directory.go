package teams

import (
	"errors"
	"fmt"
)

// ErrNotFound matches lookups for ids that were not in the fetched team list.
var ErrNotFound = errors.New("team not found")

// NotFoundError carries the id that failed to resolve.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("team %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Directory indexes one fetched team list by id.
type Directory struct {
	byID map[int]Team
}

// NewDirectory builds a Directory. Later duplicates replace earlier ones.
func NewDirectory(items []Team) *Directory {
	byID := make(map[int]Team, len(items))
	for _, t := range items {
		byID[t.ID] = t
	}
	return &Directory{byID: byID}
}

// Lookup returns the team with the given id.
func (d *Directory) Lookup(id int) (Team, error) {
	if d != nil {
		if t, ok := d.byID[id]; ok {
			return t, nil
		}
	}
	return Team{}, &NotFoundError{ID: id}
}
