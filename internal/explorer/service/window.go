package service

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-explorer/pkg/safe"
)

var (
	ErrInvalidPageSize  = errors.New("page size must be positive")
	ErrPageOutOfRange   = errors.New("page out of range")
	ErrHeightOutOfRange = errors.New("height out of range")
)

// Window is an inclusive, descending range of heights: Start is the newest.
type Window struct {
	Start uint64
	End   uint64
}

// Len returns the number of heights in w.
func (w Window) Len() int {
	return int(w.Start-w.End) + 1
}

// Contains reports whether height falls inside w.
func (w Window) Contains(height uint64) bool {
	return height <= w.Start && height >= w.End
}

// Heights lists the window newest first.
func (w Window) Heights() []uint64 {
	out := make([]uint64, 0, w.Len())
	for h := w.Start; ; h-- {
		out = append(out, h)
		if h == w.End {
			return out
		}
	}
}

// TotalPages returns ceil((latest+1)/pageSize); height 0 is a real block.
func TotalPages(latest uint64, pageSize int) (int, error) {
	size, err := pageSizeOf(pageSize)
	if err != nil {
		return 0, err
	}
	total, err := safe.Int(latest/size + 1)
	if err != nil {
		return 0, fmt.Errorf("total pages: %w", err)
	}
	return total, nil
}

// PageWindow returns the heights shown on page (1-indexed).
func PageWindow(latest uint64, pageSize, page int) (Window, error) {
	total, err := TotalPages(latest, pageSize)
	if err != nil {
		return Window{}, err
	}
	if page < 1 || page > total {
		return Window{}, fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, page, total)
	}

	size := uint64(pageSize)
	start := latest - uint64(page-1)*size
	end := uint64(0)
	if start+1 > size {
		end = start - size + 1
	}
	return Window{Start: start, End: end}, nil
}

// PageOf returns the page that shows height: ceil((latest-height+1)/pageSize).
func PageOf(latest, height uint64, pageSize int) (int, error) {
	size, err := pageSizeOf(pageSize)
	if err != nil {
		return 0, err
	}
	if height > latest {
		return 0, fmt.Errorf("%w: %d above latest %d", ErrHeightOutOfRange, height, latest)
	}
	page, err := safe.Int((latest-height)/size + 1)
	if err != nil {
		return 0, fmt.Errorf("page of %d: %w", height, err)
	}
	return page, nil
}

// ClampPage pins page into [1, total pages].
func ClampPage(latest uint64, pageSize, page int) int {
	total, err := TotalPages(latest, pageSize)
	if err != nil || page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

func pageSizeOf(pageSize int) (uint64, error) {
	size, err := safe.Uint64(pageSize)
	if err != nil || size == 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPageSize, pageSize)
	}
	return size, nil
}
