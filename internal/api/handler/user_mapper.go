package handler

import (
	"time"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
	"github.com/cyngu/integration-continue-exo-node/internal/core/ports"
)

const birthDateLayout = "2006-01-02"

// userResponse is the reduced identity payload returned by auth endpoints:
// who the account is and what it may do, nothing else.
type userResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Firstname string       `json:"firstname"`
	Email     string       `json:"email"`
	Role      *domain.Role `json:"role,omitempty"`
}

// userDetail is the full account representation for the listing endpoints.
type userDetail struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	Name      string       `json:"name"`
	Firstname string       `json:"firstname"`
	BirthDate string       `json:"birthDate,omitempty"`
	City      string       `json:"city"`
	Zipcode   string       `json:"zipcode"`
	Role      *domain.Role `json:"role,omitempty"`
}

func toUserPayload(user *domain.User) *userResponse {
	if user == nil {
		return nil
	}
	return &userResponse{
		ID:        user.ID,
		Name:      user.Name,
		Firstname: user.Firstname,
		Email:     user.Email,
		Role:      user.Role,
	}
}

func toUserDetail(user *domain.User) userDetail {
	detail := userDetail{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Firstname: user.Firstname,
		City:      user.City,
		Zipcode:   user.Zipcode,
		Role:      user.Role,
	}
	if !user.BirthDate.IsZero() {
		detail.BirthDate = user.BirthDate.Format(birthDateLayout)
	}
	return detail
}

// toCreateUserInput maps the raw request fields to the service input. The
// birth date accepts both date-only and RFC 3339 timestamps; an empty value
// passes through as the zero time and fails no parse.
func toCreateUserInput(email, password, name, firstname, birthDate, city, zipcode string) (ports.CreateUserInput, error) {
	input := ports.CreateUserInput{
		Email:     email,
		Password:  password,
		Name:      name,
		Firstname: firstname,
		City:      city,
		Zipcode:   zipcode,
	}
	if birthDate != "" {
		parsed, err := parseBirthDate(birthDate)
		if err != nil {
			return ports.CreateUserInput{}, domain.NewValidationError("birthDate")
		}
		input.BirthDate = parsed
	}
	return input, nil
}

func parseBirthDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(birthDateLayout, s)
}
