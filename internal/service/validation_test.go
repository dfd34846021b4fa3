package service

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	err := validateStruct(LoginInput{Password: "x"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("want validation error got %v", err)
	}
	key, args, ok := ValidationMessage(err)
	if !ok || key != "error.validation_required" {
		t.Fatalf("unexpected key %s", key)
	}
	if len(args) != 1 || args[0] != "emailOrNickname" {
		t.Fatalf("field should use json name, got %v", args)
	}
}

func TestValidateStructPasswordByteLimit(t *testing.T) {
	err := validateStruct(RegisterInput{
		Name:     "Ana",
		Nickname: "ana",
		Email:    "ana@x.com",
		Password: strings.Repeat("é", 40),
	})
	key, args, ok := ValidationMessage(err)
	if !ok || key != "error.validation_max_length" {
		t.Fatalf("want max_length got %v", err)
	}
	if args[1] != "72" {
		t.Fatalf("limit should be 72 bytes, got %v", args)
	}
}

func TestValidationMessageIgnoresOtherErrors(t *testing.T) {
	if _, _, ok := ValidationMessage(ErrEmailExists); ok {
		t.Fatalf("sentinel errors are not validation errors")
	}
}
