package note

import "time"

type Note struct {
	Id        string    `json:"id" example:"7b4e2f0a-3c1d-4c59-9a57-0d3c9f0e2b11"`
	User      string    `json:"user" example:"0f8fad5b-d9cb-469f-a165-70867728950e"`
	Title     string    `json:"title" example:"Shopping"`
	Text      string    `json:"text" example:"milk"`
	Completed bool      `json:"completed" example:"false"`
	UpdatedAt time.Time `json:"updatedAt" example:"2006-01-02T15:04:05Z"`
	CreatedAt time.Time `json:"createdAt" example:"2006-01-02T15:04:05Z"`
}

// WithUser is a note denormalized with its owner's username
type WithUser struct {
	Note
	Username string `json:"username" example:"dave"`
}

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type NewNote struct {
	User  string `json:"user"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (n NewNote) Validate() error {
	if n.User == "" || n.Title == "" || n.Text == "" {
		return ErrInvalidInput
	}
	return nil
}

// UpdateNote replaces every mutable field of the note with Id
type UpdateNote struct {
	Id        string `json:"id"`
	User      string `json:"user"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Completed *bool  `json:"completed"`
}

func (u UpdateNote) Validate() error {
	if u.Id == "" || u.User == "" || u.Title == "" || u.Text == "" || u.Completed == nil {
		return ErrInvalidInput
	}
	return nil
}
