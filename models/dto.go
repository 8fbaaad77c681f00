package models

import "encoding/json"

type CreateWritingRequest struct {
	Title    string  `json:"title" validate:"required"`
	Content  string  `json:"content" validate:"required"`
	Subtitle *string `json:"subtitle"`
	Author   *string `json:"author"`
}

// UpdateWritingRequest distinguishes an absent key from an explicit null,
// so only the keys present in the body are applied.
type UpdateWritingRequest struct {
	Title    OptionalString `json:"title"`
	Subtitle OptionalString `json:"subtitle"`
	Content  OptionalString `json:"content"`
	Author   OptionalString `json:"author"`
}

type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// NonEmpty reports whether the key was sent with a non-empty string.
func (o OptionalString) NonEmpty() bool {
	return o.Value != nil && *o.Value != ""
}

type MessageResponse struct {
	Message string `json:"message"`
}
