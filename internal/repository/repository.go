// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"errors"
	"math"
)

var (
	// ErrNotFound is returned when no row matches the requested identifier.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidReference is returned when a row points at a categoria or pessoa that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageQuery holds zero-based page/size pagination parameters.
type PageQuery struct {
	Page int
	Size int
}

// NewPageQuery clamps page and size into their accepted ranges.
func NewPageQuery(page, size int) PageQuery {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	// Page*Size must stay representable
	if maxPage := math.MaxInt / size; page > maxPage {
		page = maxPage
	}
	return PageQuery{Page: page, Size: size}
}

func (pq PageQuery) Limit() int  { return pq.Size }
func (pq PageQuery) Offset() int { return pq.Page * pq.Size }

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

// Page is the JSON shape of a paged response.
type Page[T any] struct {
	Content       []T  `json:"content"`
	TotalElements int  `json:"totalElements"`
	TotalPages    int  `json:"totalPages"`
	Number        int  `json:"number"`
	Size          int  `json:"size"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
}

// NewPage describes res as the pq page of its result set.
func NewPage[T any](res *PageResult[T], pq PageQuery) Page[T] {
	totalPages := 0
	if pq.Size > 0 {
		totalPages = (res.Total + pq.Size - 1) / pq.Size
	}
	items := res.Items
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Content:       items,
		TotalElements: res.Total,
		TotalPages:    totalPages,
		Number:        pq.Page,
		Size:          pq.Size,
		First:         pq.Page == 0,
		Last:          pq.Page+1 >= totalPages,
	}
}
