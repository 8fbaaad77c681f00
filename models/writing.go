package models

import "time"

type Writing struct {
	ID          uint      `gorm:"primarykey"`
	Title       string    `gorm:"size:200;not null"`
	Slug        string    `gorm:"size:200;uniqueIndex;not null"`
	Subtitle    *string   `gorm:"size:200"`
	Content     string    `gorm:"type:text;not null"`
	Author      string    `gorm:"size:100;not null"`
	ReadingTime int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// WritingResponse is the wire shape of a Writing.
type WritingResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Subtitle    *string   `json:"subtitle"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	ReadingTime int       `json:"reading_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToWritingResponse(w Writing) WritingResponse {
	return WritingResponse{
		ID:          w.ID,
		Title:       w.Title,
		Slug:        w.Slug,
		Subtitle:    w.Subtitle,
		Content:     w.Content,
		Author:      w.Author,
		ReadingTime: w.ReadingTime,
		CreatedAt:   w.CreatedAt.UTC(),
		UpdatedAt:   w.UpdatedAt.UTC(),
	}
}

func ToWritingResponses(writings []Writing) []WritingResponse {
	out := make([]WritingResponse, 0, len(writings))
	for _, w := range writings {
		out = append(out, ToWritingResponse(w))
	}
	return out
}
