package models

import "math"

// Response is the uniform envelope wrapping every API payload.
// Error responses carry only StatusCode and Message.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Paging     *Paging `json:"paging,omitempty"`
}

// Paging describes the page window of a search response.
type Paging struct {
	CurrentPage int `json:"currentPage"`
	TotalPage   int `json:"totalPage"`
	Size        int `json:"size"`
}

// NewPaging computes paging metadata for a search result.
// CurrentPage echoes the requested page even when it lies beyond the last
// page of results.
func NewPaging(page, size, total int) Paging {
	return Paging{
		CurrentPage: page,
		TotalPage:   int(math.Ceil(float64(total) / float64(size))),
		Size:        size,
	}
}
