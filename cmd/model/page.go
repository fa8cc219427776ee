package model

import "vidtube.com/pkg/utils"

// Page is one slice of a listing plus its paging metadata.
type Page[T any] struct {
	Docs        []T   `json:"docs"`
	TotalDocs   int64 `json:"totalDocs"`
	Limit       int64 `json:"limit"`
	Page        int64 `json:"page"`
	TotalPages  int64 `json:"totalPages"`
	HasPrevPage bool  `json:"hasPrevPage"`
	HasNextPage bool  `json:"hasNextPage"`
}

func NewPage[T any](docs []T, total, page, limit int64) *Page[T] {
	if docs == nil {
		docs = []T{}
	}
	pages := utils.TotalPages(total, limit)
	return &Page[T]{
		Docs:        docs,
		TotalDocs:   total,
		Limit:       limit,
		Page:        page,
		TotalPages:  pages,
		HasPrevPage: page > 1,
		HasNextPage: page < pages,
	}
}
