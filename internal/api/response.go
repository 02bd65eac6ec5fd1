package api

import "github.com/Checker-Finance/octopus-adapter/pkg/model"

// ProductListResponse is returned by GET /api/v1/products.
type ProductListResponse struct {
	Count    int             `json:"count"`
	Products []model.Product `json:"products"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error          string `json:"error"`
	Reason         string `json:"reason"`                    // fetch_error | decode_error | not_exactly_one | error
	Found          *int   `json:"found,omitempty"`           // set for not_exactly_one
	UpstreamStatus int    `json:"upstreamStatus,omitempty"` // set when Octopus answered non-2xx
}
