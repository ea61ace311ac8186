package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tradesite/directory/internal/directory/models"
)

func TestStep1(t *testing.T) {
	tests := []struct {
		name       string
		company    string
		abn        string
		wantFields []string
	}{
		{"valid", "Smith Electrical Services", "12345678901", nil},
		{"missing both", "", "", []string{"name", "abn"}},
		{"blank name", "   ", "12345678901", []string{"name"}},
		{"abn too short", "Acme", "1234567890", []string{"abn"}},
		{"abn too long", "Acme", "123456789012", []string{"abn"}},
		{"abn non numeric", "Acme", "1234567890a", []string{"abn"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Step1(tt.company, tt.abn)
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestStep2(t *testing.T) {
	tests := []struct {
		name       string
		mobile     string
		email      string
		wantFields []string
	}{
		{"valid", "0412345678", "info@smithelectrical.com.au", nil},
		{"missing both", "", "", []string{"mobile", "email"}},
		{"malformed email", "0412345678", "not-an-email", []string{"email"}},
		{"email missing domain", "0412345678", "info@", []string{"email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Step2(tt.mobile, tt.email)
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func TestStep3(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		errs := Step3(nil)
		assert.Contains(t, errs, "employees")
	})

	t.Run("unnamed employee", func(t *testing.T) {
		errs := Step3([]models.EmployeeSubmission{
			{Name: "Jan Kowalski", IsMainContact: true},
			{Name: "  "},
		})
		assert.Contains(t, errs, "employees[1].name")
		assert.NotContains(t, errs, "mainContact")
	})

	t.Run("no main contact", func(t *testing.T) {
		errs := Step3([]models.EmployeeSubmission{
			{Name: "Jan Kowalski"},
			{Name: "Sam Lee"},
		})
		assert.Contains(t, errs, "mainContact")
	})

	t.Run("valid team", func(t *testing.T) {
		errs := Step3([]models.EmployeeSubmission{
			{Name: "Jan Kowalski", JobTitle: "Foreman"},
			{Name: "Sam Lee", IsMainContact: true},
		})
		assert.Empty(t, errs)
	})
}

func TestStep4(t *testing.T) {
	assert.Contains(t, Step4(nil), "tradeIds")
	assert.Empty(t, Step4([]uint{10}))
}

func TestSubmissionRejectsMissingMainContact(t *testing.T) {
	sub := &models.Submission{
		Name:   "Smith Electrical Services",
		ABN:    "12345678901",
		Mobile: "0412345678",
		Email:  "info@smithelectrical.com.au",
		Employees: []models.EmployeeSubmission{
			{Name: "Jan Kowalski"},
		},
		TradeIDs: []uint{10},
	}

	errs := Submission(sub)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "mainContact")
}

func TestSubmissionValid(t *testing.T) {
	sub := &models.Submission{
		Name:   "Smith Electrical Services",
		ABN:    "12345678901",
		Mobile: "0412345678",
		Email:  "info@smithelectrical.com.au",
		Employees: []models.EmployeeSubmission{
			{Name: "Jan Kowalski", IsMainContact: true},
		},
		TradeIDs: []uint{10, 19},
	}

	assert.Empty(t, Submission(sub))
}
