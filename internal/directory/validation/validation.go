// Package validation holds the per-step wizard validators. Each step's
// validator is a pure function over the submitted fields; the final
// step reuses the same functions over the full resubmitted payload, so
// a client skipping earlier steps cannot bypass them.
package validation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/tradesite/directory/internal/directory/models"
)

var (
	validate   = validator.New()
	abnPattern = regexp.MustCompile(`^\d{11}$`)
)

// FieldErrors maps a field name to the message describing its
// violation. A nil or empty map means the input passed.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// merge copies src entries into dst, keeping existing entries on key
// collision so the earliest step's message wins.
func merge(dst, src FieldErrors) {
	for k, v := range src {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
}

// Step1 checks the company details: name and ABN.
func Step1(name, abn string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(name) == "" {
		errs["name"] = "Name is required"
	}
	if abn == "" {
		errs["abn"] = "ABN is required"
	} else if !abnPattern.MatchString(abn) {
		errs["abn"] = "ABN must be 11 digits"
	}
	return errs
}

// Step2 checks the contact details: mobile and email.
func Step2(mobile, email string) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(mobile) == "" {
		errs["mobile"] = "Mobile is required"
	}
	if email == "" {
		errs["email"] = "Email is required"
	} else if validate.Var(email, "email") != nil {
		errs["email"] = "Please enter a valid email address"
	}
	return errs
}

// Step3 checks the team: at least one employee, every employee named,
// and one of them flagged as main contact.
func Step3(employees []models.EmployeeSubmission) FieldErrors {
	errs := FieldErrors{}
	if len(employees) == 0 {
		errs["employees"] = "At least one employee is required"
		return errs
	}
	mainContact := false
	for i, emp := range employees {
		if strings.TrimSpace(emp.Name) == "" {
			errs[fmt.Sprintf("employees[%d].name", i)] = "All employees must have a name"
		}
		if emp.IsMainContact {
			mainContact = true
		}
	}
	if !mainContact {
		errs["mainContact"] = "At least one employee must be marked as main contact"
	}
	return errs
}

// Step4 checks that at least one trade was selected. Existence of the
// ids is checked against the store by the controller.
func Step4(tradeIDs []uint) FieldErrors {
	errs := FieldErrors{}
	if len(tradeIDs) == 0 {
		errs["tradeIds"] = "At least one trade must be selected"
	}
	return errs
}

// Submission revalidates the complete wizard payload on the final step.
func Submission(sub *models.Submission) FieldErrors {
	errs := FieldErrors{}
	merge(errs, Step1(sub.Name, sub.ABN))
	merge(errs, Step2(sub.Mobile, sub.Email))
	merge(errs, Step3(sub.Employees))
	merge(errs, Step4(sub.TradeIDs))
	return errs
}
