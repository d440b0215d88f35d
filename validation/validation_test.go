package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/streamkit/errors"
)

func TestValidatorNoErrors(t *testing.T) {
	v := New().
		Required("name", "ingest").
		Min("workers", 4, 1).
		Size("chunk_size", "32KB")

	if v.HasErrors() {
		t.Fatalf("unexpected errors: %v", v.Errors())
	}
	if err := v.Validate(); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestValidatorRequired(t *testing.T) {
	v := New().Required("name", "  ")
	if !v.HasErrors() {
		t.Fatal("expected error for blank value")
	}

	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected AppError")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", errors.ErrCodeInvalidInput, appErr.Code)
	}
	if !strings.Contains(appErr.Message, "name: is required") {
		t.Errorf("unexpected message: %s", appErr.Message)
	}
}

func TestValidatorCollectsMultiple(t *testing.T) {
	v := New().
		Required("name", "").
		Range("pipe_buffer", -1, 0, 1024).
		Size("chunk_size", "garbage")

	if len(v.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(v.Errors()), v.Errors())
	}

	appErr := v.Validate()
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok {
		t.Fatalf("expected field details, got %T", appErr.Details["fields"])
	}
	if fields[0].Field != "name" || fields[1].Field != "pipe_buffer" || fields[2].Field != "chunk_size" {
		t.Errorf("unexpected field order: %v", fields)
	}
}

func TestValidatorUUID(t *testing.T) {
	valid := uuid.NewString()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", valid, false},
		{"blank", "", true},
		{"malformed", "not-a-uuid", true},
		{"nil uuid", uuid.Nil.String(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New().RequiredUUID("source_id", tc.value)
			if v.HasErrors() != tc.wantErr {
				t.Errorf("RequiredUUID(%q) errors=%v, want %v", tc.value, v.Errors(), tc.wantErr)
			}
		})
	}
}

func TestValidatorOptionalUUID(t *testing.T) {
	if New().OptionalUUID("trace_id", "").HasErrors() {
		t.Error("empty optional UUID should pass")
	}
	if !New().OptionalUUID("trace_id", "nope").HasErrors() {
		t.Error("malformed optional UUID should fail")
	}
}

func TestValidatorSize(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", false},
		{"32KB", false},
		{"1MB", false},
		{"512", false},
		{"garbage", true},
		{"-1KB", true},
	}
	for _, tc := range tests {
		v := New().Size("chunk_size", tc.value)
		if v.HasErrors() != tc.wantErr {
			t.Errorf("Size(%q) errors=%v, want errors=%v", tc.value, v.Errors(), tc.wantErr)
		}
	}
}

func TestValidatorOneOf(t *testing.T) {
	allowed := []string{"json", "console"}
	if New().OneOf("format", "json", allowed).HasErrors() {
		t.Error("json should be allowed")
	}
	v := New().OneOf("format", "xml", allowed)
	if !v.HasErrors() {
		t.Fatal("xml should be rejected")
	}
	if !strings.Contains(v.Errors()[0].Message, "json, console") {
		t.Errorf("message should list allowed values: %s", v.Errors()[0].Message)
	}
}

func TestValidatorPattern(t *testing.T) {
	if New().Pattern("name", "ingest-1", `^[a-z][a-z0-9-]*$`).HasErrors() {
		t.Error("ingest-1 should match")
	}
	if !New().Pattern("name", "Bad Name", `^[a-z][a-z0-9-]*$`).HasErrors() {
		t.Error("'Bad Name' should not match")
	}
}

func TestValidatorCustom(t *testing.T) {
	v := New().Custom(false, "pipe_buffer", "must be unbuffered when merging")
	if !v.HasErrors() {
		t.Fatal("expected custom error")
	}
	if v.Errors()[0].Message != "must be unbuffered when merging" {
		t.Errorf("unexpected message: %s", v.Errors()[0].Message)
	}
}

func TestRequiredHelper(t *testing.T) {
	if err := Required("name", "ingest"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Required("name", ""); err == nil {
		t.Error("expected error for empty value")
	}
}

func TestValidateUUIDHelper(t *testing.T) {
	want := uuid.New()
	got, err := ValidateUUID("source_id", want.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	if _, err := ValidateUUID("source_id", "nope"); err == nil {
		t.Error("expected error for malformed UUID")
	}
	if _, err := ValidateUUID("source_id", ""); err == nil {
		t.Error("expected error for empty value")
	}
}

type pipelineSpec struct {
	Name      string `json:"name" validate:"required"`
	Format    string `json:"format" validate:"oneof=json console"`
	Workers   int    `json:"workers" validate:"gte=1,lte=64"`
	SourceURL string `json:"source_url" validate:"omitempty,url"`
}

func TestStructValidate(t *testing.T) {
	ok := pipelineSpec{Name: "ingest", Format: "json", Workers: 4}
	if err := Validate(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructValidateFailures(t *testing.T) {
	bad := pipelineSpec{Format: "xml", Workers: 0, SourceURL: "::not-a-url"}
	err := Validate(bad)
	if err == nil {
		t.Fatal("expected error")
	}

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("expected *errors.AppError, got %T", err)
	}
	msg := appErr.Message
	for _, want := range []string{"name: is required", "format: must be one of", "workers: must be 1 or more"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q should contain %q", msg, want)
		}
	}

	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) == 0 {
		t.Fatalf("expected field details, got %v", appErr.Details)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"SourceURL", "source_u_r_l"},
		{"PipeBuffer", "pipe_buffer"},
		{"already_snake", "already_snake"},
	}
	for _, tc := range tests {
		if got := toSnakeCase(tc.in); got != tc.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
