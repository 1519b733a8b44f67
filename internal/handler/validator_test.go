package handler

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/JobHunter_Go/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestValidator_AddJobRequest(t *testing.T) {
	v := GetValidator()

	valid := func() AddJobRequest {
		return AddJobRequest{Company: "Acme", Position: "Engineer"}
	}

	tests := []struct {
		name    string
		mutate  func(*AddJobRequest)
		wantErr bool
	}{
		{"minimal", func(*AddJobRequest) {}, false},
		{"explicit status", func(r *AddJobRequest) { r.Status = domain.JobStatusInterview }, false},
		{"with link", func(r *AddJobRequest) { r.Link = "https://acme.example/jobs/1" }, false},
		{"company at max", func(r *AddJobRequest) { r.Company = strings.Repeat("a", 200) }, false},

		{"missing company", func(r *AddJobRequest) { r.Company = "" }, true},
		{"missing position", func(r *AddJobRequest) { r.Position = "" }, true},
		{"company over max", func(r *AddJobRequest) { r.Company = strings.Repeat("a", 201) }, true},
		{"unknown status", func(r *AddJobRequest) { r.Status = "Ghosted" }, true},
		{"lowercase status", func(r *AddJobRequest) { r.Status = "applied" }, true},
		{"bad link", func(r *AddJobRequest) { r.Link = "not a url" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := v.ValidateStruct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_UpdateContactRequest(t *testing.T) {
	v := GetValidator()

	replied := domain.ContactStatusReplied
	mentor := domain.ContactTypeMentor
	bogusStatus := domain.ContactStatus("Ignored")
	bogusType := domain.ContactType("Friend")
	followUp := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     UpdateContactRequest
		wantErr bool
	}{
		{"empty update", UpdateContactRequest{}, false},
		{"status and type", UpdateContactRequest{Status: &replied, Type: &mentor}, false},
		{"rename", UpdateContactRequest{Name: strPtr("Grace")}, false},

		{"blank name", UpdateContactRequest{Name: strPtr("")}, true},
		{"unknown status", UpdateContactRequest{Status: &bogusStatus}, true},
		{"unknown type", UpdateContactRequest{Type: &bogusType}, true},
		{"bad link", UpdateContactRequest{Link: strPtr("nope")}, true},

		{"clear follow-up", UpdateContactRequest{ClearNextFollowUp: true}, false},
		{"clear and set follow-up", UpdateContactRequest{ClearNextFollowUp: true, NextFollowUpAt: &followUp}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.req)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("non validation error", func(t *testing.T) {
		fields := FormatValidationError(errors.New("boom"))
		assert.Equal(t, ValidationMsgInvalidFormat, fields["error"])
	})

	t.Run("fields keyed by json name", func(t *testing.T) {
		err := v.ValidateStruct(AddJobRequest{
			Position: strings.Repeat("p", 201),
			Status:   "Ghosted",
		})
		require.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, ValidationMsgRequired, fields["company"])
		assert.Equal(t, "Must be at most 200 characters", fields["position"])
		assert.Equal(t, ValidationMsgJobStatus, fields["status"])
	})

	t.Run("pointer fields are reported by json name", func(t *testing.T) {
		bad := "nope"
		err := v.ValidateStruct(UpdateContactRequest{Link: &bad})
		require.Error(t, err)

		assert.Equal(t, map[string]string{"link": ValidationMsgURL}, FormatValidationError(err))
	})
}
