package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// EventForm is user input for creating or editing an event.
type EventForm struct {
	Title       string    `validate:"required,min=3"`
	Description string    `validate:"required,min=10"`
	Type        EventType `validate:"required,oneof=Online In-Person"`
	Location    string    `validate:"required_if=Type In-Person"`
	EventLink   string    `validate:"required_if=Type Online"`
	Start       time.Time `validate:"required"`
	End         time.Time `validate:"required,gtfield=Start"`
	Category    string    `validate:"required,category"`
}

// FormFromEvent pre-fills a form for editing.
func FormFromEvent(e Event) EventForm {
	return EventForm{
		Title:       e.Title,
		Description: e.Description,
		Type:        e.Type,
		Location:    e.Location,
		EventLink:   e.EventLink,
		Start:       e.Start,
		End:         e.End,
		Category:    e.Category,
	}
}

func (f EventForm) Validate() error {
	return validateForm(f)
}

func (f EventForm) Draft() EventDraft {
	return EventDraft{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Type:        f.Type,
		Location:    strings.TrimSpace(f.Location),
		EventLink:   strings.TrimSpace(f.EventLink),
		Start:       f.Start,
		End:         f.End,
		Category:    f.Category,
	}
}

// Patch returns the fields of f that differ from e.
func (f EventForm) Patch(e Event) EventPatch {
	var p EventPatch
	d := f.Draft()
	if d.Title != e.Title {
		p.Title = &d.Title
	}
	if d.Description != e.Description {
		p.Description = &d.Description
	}
	if d.Type != e.Type {
		p.Type = &d.Type
	}
	if d.Location != e.Location {
		p.Location = &d.Location
	}
	if d.EventLink != e.EventLink {
		p.EventLink = &d.EventLink
	}
	if !d.Start.Equal(e.Start) {
		p.Start = &d.Start
	}
	if !d.End.Equal(e.End) {
		p.End = &d.End
	}
	if d.Category != e.Category {
		p.Category = &d.Category
	}
	return p
}

type SignupForm struct {
	Name            string `validate:"required,min=2"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

func (f SignupForm) Validate() error {
	return validateForm(f)
}

type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func (f LoginForm) Validate() error {
	return validateForm(f)
}

// FormError lists every problem found in a form, one message per field.
type FormError struct {
	Problems []string
}

func (e *FormError) Error() string {
	return strings.Join(e.Problems, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return IsCategory(fl.Field().String())
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(EventForm)
		if f.EventLink != "" && sl.Validator().Var(f.EventLink, "url") != nil {
			sl.ReportError(f.EventLink, "EventLink", "EventLink", "url", "")
		}
	}, EventForm{})
	return v
}

var fieldLabels = map[string]string{
	"Title":           "Title",
	"Description":     "Description",
	"Type":            "Event type",
	"Location":        "Location",
	"EventLink":       "Event link",
	"Start":           "Start date and time",
	"End":             "End date and time",
	"Category":        "Category",
	"Name":            "Name",
	"Email":           "Email",
	"Password":        "Password",
	"ConfirmPassword": "Password confirmation",
}

func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fe := &FormError{Problems: make([]string, 0, len(verrs))}
	for _, v := range verrs {
		fe.Problems = append(fe.Problems, describe(v))
	}
	return fe
}

func describe(v validator.FieldError) string {
	label := fieldLabels[v.StructField()]
	if label == "" {
		label = v.StructField()
	}

	switch v.Tag() {
	case "required":
		return label + " is required"
	case "required_if":
		if v.StructField() == "Location" {
			return "Location is required for in-person events"
		}
		return "Event link is required for online events"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, v.Param())
	case "gtfield":
		return "End time must be after start time"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(v.Param(), " ", ", "))
	case "url":
		return "Must be a valid URL"
	case "email":
		return "Invalid email"
	case "eqfield":
		return "Passwords must match"
	case "category":
		return "Category must be one of: " + strings.Join(categories, ", ")
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, v.Tag())
	}
}
