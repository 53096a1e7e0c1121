package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// PackageForm is the submit payload of the package add/edit screens.
type PackageForm struct {
	Name       string `validate:"required"`
	VideoLimit *int   `validate:"omitempty,gte=0"` // nil = unlimited
	Position   int    `validate:"gte=0"`
	Status     string `validate:"required,oneof=active inactive"`
	Line1      string
	Line2      string
	Line3      string
	Line4      string
	Line5      string
}

func (f PackageForm) Validate() string {
	return firstViolation(f)
}

// PlanForm is the submit payload of the membership-plan add/edit screens.
// Duration is not part of the form: it is derived from PlanName on the server
// just like the read-only field in the UI.
type PlanForm struct {
	PackageID string  `validate:"required"`
	PlanName  string  `validate:"required,oneof=monthly half-yearly yearly"`
	Price     float64 `validate:"gte=0"`
	Discount  float64 `validate:"gte=0"`
	Position  int     `validate:"gte=0"`
	Status    string  `validate:"required,oneof=active inactive"`
}

func (f PlanForm) Validate() string {
	if msg := firstViolation(f); msg != "" {
		return msg
	}
	if f.Discount > f.Price {
		return "Discount cannot be greater than price"
	}
	if PlanDuration(f.PlanName) < 1 {
		return "Plan name has an invalid value"
	}
	return ""
}

// SubscriptionForm is the submit payload of the subscription add/edit
// screens. Price/discount/finalPrice/endDate are not submitted: they are
// snapshotted server-side from the selected plan.
type SubscriptionForm struct {
	StudentID    string `validate:"required"`
	PackageID    string `validate:"required"`
	MembershipID string `validate:"required"`
	StartDate    string `validate:"required,datetime=2006-01-02"`
}

func (f SubscriptionForm) Validate() string {
	return firstViolation(f)
}

// VideoForm is the submit payload of the video add/edit screens.
type VideoForm struct {
	PackageID string `validate:"required"`
	VideoURL  string `validate:"required,url"`
	Status    string `validate:"required,oneof=active inactive"`
}

func (f VideoForm) Validate() string {
	return firstViolation(f)
}

// firstViolation runs the tag validation and turns the first violated rule
// into a user-facing message. Fields are checked in declaration order, so the
// first violation wins and no partial submit happens.
func firstViolation(form any) string {
	err := validate.Struct(form)
	if err == nil {
		return ""
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "The form could not be validated"
	}
	return violationMessage(errs[0])
}

func violationMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "gte":
		return label + " must not be negative"
	case "oneof":
		return label + " has an invalid value"
	case "datetime":
		return label + " must be a valid date (YYYY-MM-DD)"
	case "url":
		return label + " must be a valid URL"
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, fe.Tag())
	}
}

// fieldLabel splits a CamelCase struct field into words: "VideoLimit" ->
// "Video limit", "PackageID" -> "Package ID".
func fieldLabel(field string) string {
	var words []string
	current := strings.Builder{}
	runes := []rune(field)
	for i, r := range runes {
		if i > 0 && r >= 'A' && r <= 'Z' && !(runes[i-1] >= 'A' && runes[i-1] <= 'Z') {
			words = append(words, current.String())
			current.Reset()
		}
		current.WriteRune(r)
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}
	for i, w := range words {
		if i == 0 {
			continue
		}
		if w != strings.ToUpper(w) {
			words[i] = strings.ToLower(w)
		}
	}
	return strings.Join(words, " ")
}
