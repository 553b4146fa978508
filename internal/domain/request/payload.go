package request

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/pkg/errs"
)

// Payload is the category-specific form data a customer submits.
type Payload map[string]string

const (
	maxRegistrationNumberLen = 32
	maxBusinessNameLen       = 150
	minExamYear              = 1980
)

var (
	examBodies        = []string{"waec", "neco", "nabteb"}
	cacRegistrations  = []string{"business_name", "company", "incorporated_trustee"}
	airtimeNetworks   = []string{"mtn", "glo", "airtel", "9mobile"}
	lowercasedPayload = []string{"exam_body", "registration_type", "network", "pin_type"}
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed; it matches errs.ErrInvalidPayload.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return errs.ErrInvalidPayload.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return errs.ErrInvalidPayload
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// Rules carries the context payload validation depends on.
type Rules struct {
	Now         time.Time
	AllowedPool func(pool string) bool
}

// ValidatePayload checks the required fields of cat and returns a normalized copy of the
// payload together with the inventory pool the request draws from (empty for agent categories).
func ValidatePayload(cat category.Category, p Payload, rules Rules) (Payload, string, error) {
	if !cat.IsValid() {
		return nil, "", &ValidationError{Fields: []FieldError{{Field: "category", Message: "unknown category"}}}
	}

	norm := make(Payload, len(p))
	for k, v := range p {
		norm[k] = strings.TrimSpace(v)
	}
	for _, k := range lowercasedPayload {
		if v, ok := norm[k]; ok {
			norm[k] = strings.ToLower(v)
		}
	}

	verr := &ValidationError{}
	pool := ""

	switch cat {
	case category.Identity:
		requireDigits(verr, norm, "nin", 11)
	case category.BVN:
		requireDigits(verr, norm, "bvn", 11)
	case category.Education:
		validateEducation(verr, norm, rules.Now)
	case category.CAC:
		validateCAC(verr, norm)
	case category.AirtimeToCash:
		validateAirtimeToCash(verr, norm)
	case category.PinOrder:
		pool = norm["pin_type"]
		switch {
		case pool == "":
			verr.add("pin_type", "is required")
		case rules.AllowedPool == nil || !rules.AllowedPool(pool):
			verr.add("pin_type", "unsupported pin type %q", pool)
		}
	}

	if len(verr.Fields) > 0 {
		return nil, "", verr
	}
	return norm, pool, nil
}

func validateEducation(verr *ValidationError, p Payload, now time.Time) {
	reg := p["registration_number"]
	switch {
	case reg == "":
		verr.add("registration_number", "is required")
	case utf8.RuneCountInString(reg) > maxRegistrationNumberLen:
		verr.add("registration_number", "must be at most %d characters", maxRegistrationNumberLen)
	}

	year := p["exam_year"]
	if !isDigits(year, 4) {
		verr.add("exam_year", "must be a 4-digit year")
	} else {
		y, _ := strconv.Atoi(year)
		if y < minExamYear || y > now.Year() {
			verr.add("exam_year", "must be between %d and %d", minExamYear, now.Year())
		}
	}

	if body, ok := p["exam_body"]; ok && !oneOf(body, examBodies) {
		verr.add("exam_body", "must be one of %s", strings.Join(examBodies, ", "))
	}
}

func validateCAC(verr *ValidationError, p Payload) {
	name := p["business_name"]
	switch {
	case name == "":
		verr.add("business_name", "is required")
	case utf8.RuneCountInString(name) > maxBusinessNameLen:
		verr.add("business_name", "must be at most %d characters", maxBusinessNameLen)
	}
	if rt, ok := p["registration_type"]; ok && !oneOf(rt, cacRegistrations) {
		verr.add("registration_type", "must be one of %s", strings.Join(cacRegistrations, ", "))
	}
}

func validateAirtimeToCash(verr *ValidationError, p Payload) {
	if !oneOf(p["network"], airtimeNetworks) {
		verr.add("network", "must be one of %s", strings.Join(airtimeNetworks, ", "))
	}
	phone := p["phone"]
	if !isDigits(phone, 11) || phone[0] != '0' {
		verr.add("phone", "must be an 11-digit number starting with 0")
	}
	amount, err := money.Parse(p["amount"])
	if err != nil || !amount.IsPositive() {
		verr.add("amount", "must be a positive naira amount")
	}
}

func requireDigits(verr *ValidationError, p Payload, field string, n int) {
	v, ok := p[field]
	if !ok || v == "" {
		verr.add(field, "is required")
		return
	}
	if !isDigits(v, n) {
		verr.add(field, "must be %d digits", n)
	}
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
