package models

import "encoding/json"

// Success and session-invalidation sentinels carried in Envelope.Code.
const (
	CodeSuccess      = 200
	CodeUnauthorized = 401
)

// Envelope is the uniform wrapper returned by every backend endpoint.
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// PageQuery is embedded by every paginated query. PageNum is 1-based.
type PageQuery struct {
	PageNum  *int `form:"pageNum" json:"pageNum,omitempty"`
	PageSize *int `form:"pageSize" json:"pageSize,omitempty"`
}

// PageResult mirrors the backend's page envelope.
type PageResult[T any] struct {
	Records []T   `json:"records"`
	Total   int64 `json:"total"`
	Pages   int64 `json:"pages"`
	Size    int64 `json:"size"`
	Current int64 `json:"current"`
}

// Int returns a pointer to v, for optional query fields.
func Int(v int) *int { return &v }

// String returns a pointer to v, for optional query fields.
func String(v string) *string { return &v }
