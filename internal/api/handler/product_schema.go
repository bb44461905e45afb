package handler

import "github.com/storelane/commerce-api/internal/core/domain"

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Currency    string  `json:"currency"    validate:"required,len=3"`
	Category    string  `json:"category"    validate:"required"`
	Stock       int     `json:"stock"       validate:"gte=0"`
}

type updateProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Currency    string  `json:"currency"    validate:"required,len=3"`
	Category    string  `json:"category"    validate:"required"`
	Stock       int     `json:"stock"       validate:"gte=0"`
	Active      bool    `json:"active"`
}

type productListData struct {
	Products   []*domain.Product `json:"products"`
	Pagination paginationData    `json:"pagination"`
}
