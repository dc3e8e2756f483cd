package company

// CreateCompanyDTO is the payload for POST /companies.
type CreateCompanyDTO struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	ApprovedBy  string `json:"approved_by"`
	DateSignDay *int   `json:"date_sign_day"`
}

// UpdateCompanyDTO uses pointers so absent fields are left unchanged.
type UpdateCompanyDTO struct {
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	Description *string `json:"description,omitempty"`
	ApprovedBy  *string `json:"approved_by,omitempty"`
	DateSignDay *int    `json:"date_sign_day,omitempty"`
}

type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func validDateSignDay(day *int) bool {
	return day == nil || (*day >= 1 && *day <= 31)
}

func (d CreateCompanyDTO) Validate() error {
	if d.Name == "" {
		return ValidationError{Msg: "name is required"}
	}
	if !validDateSignDay(d.DateSignDay) {
		return ValidationError{Msg: "date_sign_day must be between 1 and 31"}
	}
	return nil
}

func (d UpdateCompanyDTO) Validate() error {
	if d.Name != nil && *d.Name == "" {
		return ValidationError{Msg: "name cannot be empty"}
	}
	if !validDateSignDay(d.DateSignDay) {
		return ValidationError{Msg: "date_sign_day must be between 1 and 31"}
	}
	return nil
}
