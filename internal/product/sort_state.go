package product

import "fmt"

type SortField string

const (
	SortFieldNone     SortField = ""
	SortFieldID       SortField = "id"
	SortFieldProduct  SortField = "product"
	SortFieldCategory SortField = "category"
	SortFieldUser     SortField = "user"
)

// SortFields lists the sortable columns in table order.
func SortFields() []SortField {
	return []SortField{SortFieldID, SortFieldProduct, SortFieldCategory, SortFieldUser}
}

func ParseSortField(s string) (SortField, error) {
	switch f := SortField(s); f {
	case SortFieldNone, SortFieldID, SortFieldProduct, SortFieldCategory, SortFieldUser:
		return f, nil
	default:
		return SortFieldNone, fmt.Errorf("%w: unknown field %q", ErrInvalidSort, s)
	}
}

type SortDirection string

const (
	SortDirectionNone SortDirection = ""
	SortDirectionAsc  SortDirection = "asc"
	SortDirectionDesc SortDirection = "desc"
)

func ParseSortDirection(s string) (SortDirection, error) {
	switch d := SortDirection(s); d {
	case SortDirectionNone, SortDirectionAsc, SortDirectionDesc:
		return d, nil
	default:
		return SortDirectionNone, fmt.Errorf("%w: unknown direction %q", ErrInvalidSort, s)
	}
}

// SortState is the active sort column and direction. The zero value is unsorted.
type SortState struct {
	Field     SortField     `json:"field,omitempty"`
	Direction SortDirection `json:"direction,omitempty"`
}

func (s SortState) IsSorted() bool {
	return s.Field != SortFieldNone
}

// DirectionOf returns the direction applied to column f, or none when f is not the active column.
func (s SortState) DirectionOf(f SortField) SortDirection {
	if s.Field != f || f == SortFieldNone {
		return SortDirectionNone
	}
	return s.Direction
}

// Toggle returns the state after a click on column f:
// a new column sorts ascending, ascending becomes descending,
// and descending goes back to unsorted.
func (s SortState) Toggle(f SortField) SortState {
	if f == SortFieldNone {
		return SortState{}
	}
	if f != s.Field {
		return SortState{Field: f, Direction: SortDirectionAsc}
	}

	if s.Direction == SortDirectionDesc {
		return SortState{}
	}

	return SortState{Field: f, Direction: SortDirectionDesc}
}
