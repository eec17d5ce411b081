package operacao

import (
	"errors"
	"strings"
)

// SortColumn is a column the data query may be ordered by. Only the values
// declared below exist; user input is resolved through LookupSortColumn and
// never reaches the query text directly.
type SortColumn string

const (
	SortColumnID           SortColumn = "id"
	SortColumnDescricao    SortColumn = "descricao"
	SortColumnValor        SortColumn = "valor"
	SortColumnDataContabil SortColumn = "data_contabil"
)

var sortColumns = []SortColumn{
	SortColumnID,
	SortColumnDescricao,
	SortColumnValor,
	SortColumnDataContabil,
}

func (c SortColumn) String() string {
	return string(c)
}

// LookupSortColumn matches name case-insensitively against the allow-list.
func LookupSortColumn(name string) (SortColumn, bool) {
	lowered := strings.ToLower(name)
	for _, column := range sortColumns {
		if string(column) == lowered {
			return column, true
		}
	}
	return "", false
}

// SortColumnNames lists the allow-list in declaration order.
func SortColumnNames() []string {
	names := make([]string, len(sortColumns))
	for i, column := range sortColumns {
		names[i] = string(column)
	}
	return names
}

type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

func (d SortDirection) String() string {
	if d == SortDesc {
		return "DESC"
	}
	return "ASC"
}

// ParseSortDirection returns SortDesc only for "desc" in any case.
func ParseSortDirection(direction string) SortDirection {
	if strings.EqualFold(direction, "desc") {
		return SortDesc
	}
	return SortAsc
}

type Sort struct {
	Column    SortColumn
	Direction SortDirection
}

var DefaultSort = Sort{Column: SortColumnID, Direction: SortAsc}

var ErrInvalidSortColumn = errors.New("invalid sort column")

// ParseSort reads "<column>,<direction>". An empty value is DefaultSort and a
// missing direction is ascending.
func ParseSort(raw string) (Sort, error) {
	if raw == "" {
		return DefaultSort, nil
	}

	parts := strings.Split(raw, ",")
	column, ok := LookupSortColumn(parts[0])
	if !ok {
		return Sort{}, ErrInvalidSortColumn
	}

	direction := SortAsc
	if len(parts) > 1 {
		direction = ParseSortDirection(parts[1])
	}

	return Sort{Column: column, Direction: direction}, nil
}
