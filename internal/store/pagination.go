package store

import (
	"net/http"
	"strconv"
)

type PaginationParams struct {
	PageID int `json:"page" validate:"gte=1"`
	Limit  int `json:"limit" validate:"gte=1,lte=50"`
}

func (pp PaginationParams) Parse(r *http.Request) (PaginationParams, error) {
	q := r.URL.Query()

	if limit := q.Get("limit"); limit != "" {
		l, err := strconv.Atoi(limit)
		if err != nil {
			return pp, err
		}
		pp.Limit = l
	}

	if page := q.Get("page"); page != "" {
		p, err := strconv.Atoi(page)
		if err != nil {
			return pp, err
		}
		pp.PageID = p
	}

	return pp, nil
}
