package server

import (
	"github.com/katalvlaran/ternary/lattice"
	"github.com/katalvlaran/ternary/profile"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidInput   = "INVALID_INPUT"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeTimeout        = "TIMEOUT"
	CodeInternal       = "INTERNAL"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// SignatureRequest is the body of POST /v1/signature. Mode and Filters
// default to the server configuration when omitted.
type SignatureRequest struct {
	Signature [3]int           `json:"signature" binding:"dive,gte=0,lte=256"`
	Mode      *profile.Mode    `json:"mode,omitempty"`
	Filters   *profile.Filters `json:"filters,omitempty"`
	Limit     int              `json:"limit" binding:"gte=0"`
}

// SignatureResponse lists the profiles found for a signature.
type SignatureResponse struct {
	Signature [3]int                 `json:"signature"`
	Mode      profile.Mode           `json:"mode"`
	Count     int                    `json:"count"`
	Profiles  []profile.ScaleProfile `json:"profiles"`
}

// QPResponse is the body of GET /v1/qp/:word.
type QPResponse struct {
	Word       string              `json:"word"`
	Found      bool                `json:"found"`
	Descriptor *lattice.Descriptor `json:"descriptor,omitempty"`
}

// NecklacesQuery is the query of GET /v1/necklaces.
type NecklacesQuery struct {
	Content string `form:"content" binding:"required"`
	Limit   int    `form:"limit" binding:"gte=0,lte=100000"`
}

// NecklacesResponse lists necklaces with their closed-form total.
type NecklacesResponse struct {
	Content   []int    `json:"content"`
	Total     string   `json:"total"`
	Truncated bool     `json:"truncated"`
	Necklaces []string `json:"necklaces"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
