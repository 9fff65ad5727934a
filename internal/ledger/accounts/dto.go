package accounts

import (
	"fmt"

	"github.com/contalivre/contalivre/internal/ledger/shared"
)

// CreateInput groups fields required to register an account.
type CreateInput struct {
	Code     string      `json:"code" validate:"required"`
	Name     string      `json:"name" validate:"required"`
	Type     AccountType `json:"type" validate:"required"`
	ParentID *int64      `json:"parent_id"`
}

// Validate ensures the registration input meets minimum criteria.
func (in CreateInput) Validate() error {
	if in.Code == "" {
		return fmt.Errorf("%w: code is required", shared.ErrInvalidInput)
	}
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", shared.ErrInvalidInput)
	}
	if !in.Type.Valid() {
		return fmt.Errorf("%w: unknown account type %q", shared.ErrInvalidInput, in.Type)
	}
	return nil
}

// UpdateInput replaces all mutable account fields.
type UpdateInput struct {
	Code     string      `json:"code" validate:"required"`
	Name     string      `json:"name" validate:"required"`
	Type     AccountType `json:"type" validate:"required"`
	IsActive bool        `json:"is_active"`
	ParentID *int64      `json:"parent_id"`
}

// Validate ensures the update input meets minimum criteria.
func (in UpdateInput) Validate() error {
	return CreateInput{Code: in.Code, Name: in.Name, Type: in.Type}.Validate()
}
