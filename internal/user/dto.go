package user

// UpdateProfileDTO carries profile fields a user may change about themselves.
// Nil pointers mean "leave unchanged".
type UpdateProfileDTO struct {
	Name              *string `json:"name,omitempty"`
	Prefix            *string `json:"prefix,omitempty"`
	SelectedCompanyID *int64  `json:"selected_company_id,omitempty"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d UpdateProfileDTO) Validate() error {
	if d.Name != nil && *d.Name == "" {
		return ValidationError{Msg: "name cannot be empty"}
	}
	if d.Prefix != nil {
		switch *d.Prefix {
		case "", "Mr.", "Ms.", "Mrs.", "Dr.":
		default:
			return ValidationError{Msg: "prefix must be one of Mr., Ms., Mrs., Dr."}
		}
	}
	return nil
}
