package domain

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

// Page carries skip/limit paging params.
type Page struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}

// Normalize validates the page and applies the default limit.
func (p Page) Normalize() (Page, error) {
	if p.Skip < 0 {
		return p, ValidationError{Field: "skip", Msg: "must be greater than or equal to 0"}
	}
	if p.Limit < 0 {
		return p, ValidationError{Field: "limit", Msg: "must be greater than or equal to 0"}
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p, nil
}
