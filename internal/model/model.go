// Package model defines the clinic API payloads consumed by the client.
package model

import "strings"

// Sex is the child's sex as accepted by the API.
type Sex string

// Known sexes; SexNone is the picker placeholder.
const (
	SexNone   Sex = "NONE"
	SexMale   Sex = "MALE"
	SexFemale Sex = "FEMALE"
)

// Form field names of the add-kid form. They double as keys of server-side 400 responses.
const (
	FieldFullName        = "full_name"
	FieldNationalID      = "child_id_number"
	FieldURN             = "UAE_number"
	FieldSex             = "gender"
	FieldNationality     = "nationality"
	FieldInsurance       = "insurance"
	FieldInsuranceNumber = "insurance_number"
	FieldDateOfBirth     = "date_of_birth"
)

// Child is a registered child record. NationalID and URN are unique server-side.
type Child struct {
	ID              int64  `json:"id,omitempty"`
	FullName        string `json:"full_name"`
	NationalID      string `json:"child_id_number"`
	URN             string `json:"UAE_number"`
	Sex             Sex    `json:"gender"`
	Nationality     string `json:"nationality"` // ISO3
	Insurance       string `json:"insurance"`
	InsuranceNumber string `json:"insurance_number"`
	DateOfBirth     string `json:"date_of_birth"` // YYYY-MM-DD
}

// Form flattens the child into form values keyed by field name.
func (c Child) Form() map[string]string {
	return map[string]string{
		FieldFullName:        c.FullName,
		FieldNationalID:      c.NationalID,
		FieldURN:             c.URN,
		FieldSex:             string(c.Sex),
		FieldNationality:     c.Nationality,
		FieldInsurance:       c.Insurance,
		FieldInsuranceNumber: c.InsuranceNumber,
		FieldDateOfBirth:     c.DateOfBirth,
	}
}

// ChildFromForm builds a child from (already validated) form values, trimming whitespace.
func ChildFromForm(v map[string]string) Child {
	get := func(k string) string { return strings.TrimSpace(v[k]) }
	return Child{
		FullName:        get(FieldFullName),
		NationalID:      get(FieldNationalID),
		URN:             get(FieldURN),
		Sex:             Sex(get(FieldSex)),
		Nationality:     get(FieldNationality),
		Insurance:       get(FieldInsurance),
		InsuranceNumber: get(FieldInsuranceNumber),
		DateOfBirth:     get(FieldDateOfBirth),
	}
}

// Notification is an in-app notification.
type Notification struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	IsRead bool   `json:"is_read"`
}

// Vaccination is a single vaccination entry of a child.
type Vaccination struct {
	ID   int64  `json:"id"`
	Name string `json:"Vaccination_name"`
	Date string `json:"Vaccination_date"`
}

// Document is a child document (prescription, leave, precaution letter).
type Document struct {
	ID       int64  `json:"id"`
	Name     string `json:"Name,omitempty"`
	Document string `json:"document"` // path relative to the API base URL
	URL      string `json:"-"`        // Document resolved against the base URL
}

// Registration is the account registration payload; the server answers by dispatching an OTP.
type Registration struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// Message is the generic {message}/{error} acknowledgement returned by public endpoints.
type Message struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text returns whichever of message/error is set.
func (m Message) Text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}
