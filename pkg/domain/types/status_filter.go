package types

import "github.com/m-mizutani/goerr/v2"

// StatusFilter selects dashboard rows by case status. FilterAll passes
// every row.
type StatusFilter string

const FilterAll StatusFilter = "all"

// FilterFor returns the filter matching exactly status
func FilterFor(status CaseStatus) StatusFilter {
	return StatusFilter(status)
}

// Normalize treats an empty filter as FilterAll
func (f StatusFilter) Normalize() StatusFilter {
	if f == "" {
		return FilterAll
	}
	return f
}

// IsAll reports whether the filter passes every row
func (f StatusFilter) IsAll() bool {
	return f.Normalize() == FilterAll
}

// Match reports whether a case with status passes the filter
func (f StatusFilter) Match(status CaseStatus) bool {
	if f.IsAll() {
		return true
	}
	return CaseStatus(f) == status
}

func (f StatusFilter) String() string {
	return string(f.Normalize())
}

// ParseStatusFilter accepts "", "all" or any valid case status
func ParseStatusFilter(s string) (StatusFilter, error) {
	f := StatusFilter(s).Normalize()
	if f == FilterAll {
		return f, nil
	}
	if !CaseStatus(f).IsValid() {
		return "", goerr.New("invalid status filter", goerr.V("filter", s))
	}
	return f, nil
}
