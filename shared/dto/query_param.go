package dto

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty,gte=0"`
	Limit   int    `json:"limit"    validate:"omitempty,gte=0"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// OrderBy returns unpaginated params sorted on a single column. The column is
// interpolated into SQL, so callers pass model field constants only.
func OrderBy(column, direction string) QueryParams {
	if direction != SortDirDesc {
		direction = SortDirAsc
	}

	return QueryParams{SortBy: column, SortDir: direction}
}

// WithLimit caps the number of returned rows.
func (q QueryParams) WithLimit(limit int) QueryParams {
	q.Limit = limit

	return q
}
