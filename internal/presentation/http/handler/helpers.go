package handler

import (
	"github.com/sangkips/laundry-admin/pkg/pagination"
)

func pageParams(page, perPage int) *pagination.PaginationParams {
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()
	return params
}
