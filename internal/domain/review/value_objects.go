package review

import (
	"strings"
	"unicode/utf8"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
	MaxTitleLength   = 120
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Comment struct {
	value string
}

func NewComment(s string) (Comment, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Comment{}, ErrEmptyComment
	}
	if utf8.RuneCountInString(s) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{value: s}, nil
}

func (c Comment) String() string { return c.value }

type Title struct {
	value string
}

// NewTitle accepts an empty title.
func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: s}, nil
}

func (t Title) String() string { return t.value }
