package dto

// Response is the envelope every endpoint returns.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type PageDTO struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Offset converts 1-based page numbers to a row offset.
func (p *PageDTO) Offset() int {
	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.PageSize()
	return (page - 1) * limit
}

func (p *PageDTO) PageSize() int {
	if p.Limit <= 0 || p.Limit > 100 {
		return 20
	}
	return p.Limit
}

type PagedDTO struct {
	Items interface{} `json:"items"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}
