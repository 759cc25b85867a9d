package item

import (
	"strings"

	"github.com/ductran2702/code-challenge-backend/internal/validation"
)

// Field bounds shared by the create, update and list payloads.
const (
	NameMaxLength        = 255
	DescriptionMaxLength = 1000
)

// ------------------------------------------------------------

// CreateItemPayload is the body of POST /items.
//
// Description is a pointer so "absent" can be told apart from a value;
// after Validate an empty description is normalized to nil.
type CreateItemPayload struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description" validate:"omitnil,max=1000"`
}

func (p *CreateItemPayload) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = normalizeDescription(p.Description)

	return validation.Validator().Struct(p)
}

// ------------------------------------------------------------

// GetItemsQuery carries the optional case-insensitive name filter of GET /items.
// An empty filter means "no filter".
type GetItemsQuery struct {
	Name string `query:"name" validate:"max=255"`
}

func (q *GetItemsQuery) Validate() error {
	q.Name = strings.TrimSpace(q.Name)

	return validation.Validator().Struct(q)
}

// ------------------------------------------------------------

// GetItemByIDPayload identifies an item through the :id path parameter.
type GetItemByIDPayload struct {
	ID int64 `param:"id" json:"-" validate:"gt=0"`
}

func (p *GetItemByIDPayload) Validate() error {
	return validation.Validator().Struct(p)
}

// ------------------------------------------------------------

// UpdateItemPayload is the body of PUT /items/:id. Only supplied fields
// change: nil means "leave as is". An empty description clears it.
type UpdateItemPayload struct {
	ID          int64   `param:"id" json:"-" validate:"gt=0"`
	Name        *string `json:"name" validate:"omitnil,min=1,max=255"`
	Description *string `json:"description" validate:"omitnil,max=1000"`

	// ClearDescription is set by Validate when the client sent an empty
	// description; the repository then writes NULL.
	ClearDescription bool `json:"-"`
}

func (p *UpdateItemPayload) Validate() error {
	if p.Name != nil {
		trimmed := strings.TrimSpace(*p.Name)
		p.Name = &trimmed
	}

	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		p.Description = nil
		p.ClearDescription = true
	} else {
		p.Description = normalizeDescription(p.Description)
	}

	if err := validation.Validator().Struct(p); err != nil {
		return err
	}

	if !p.HasChanges() {
		return validation.CustomValidationErrors{
			{
				Field:   "body",
				Message: "at least one field (name or description) must be provided",
			},
		}
	}

	return nil
}

// HasChanges reports whether the payload touches any column.
func (p *UpdateItemPayload) HasChanges() bool {
	return p.Name != nil || p.Description != nil || p.ClearDescription
}

// ------------------------------------------------------------

// DeleteItemPayload identifies the item removed by DELETE /items/:id.
type DeleteItemPayload struct {
	ID int64 `param:"id" json:"-" validate:"gt=0"`
}

func (p *DeleteItemPayload) Validate() error {
	return validation.Validator().Struct(p)
}

// ------------------------------------------------------------

// normalizeDescription trims the description and turns "" into nil so
// blank descriptions are stored as NULL.
func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
