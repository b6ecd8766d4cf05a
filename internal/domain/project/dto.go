package project

import (
	"github.com/facade-tech/workforce-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Location) {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
