package shared

// Page bounds a limit/offset slice over an ordered result set.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

const (
	defaultLimit = 50
	maxLimit     = 500
)

// NormalizePage clamps raw limit/offset values to sane bounds.
func NormalizePage(limit, offset int) Page {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}
}
