package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/quickstationery/pkg/validate"
)

type signupInput struct {
	Name                 string `json:"name"                  validate:"required,min=2,max=50"`
	Email                string `json:"email"                 validate:"required,email"`
	Password             string `json:"password"              validate:"required,min=4"`
	PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(signupInput{
		Name:                 "Asha",
		Email:                "asha@example.com",
		Password:             "secret",
		PasswordConfirmation: "secret",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(signupInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["name"]; !ok {
		t.Error("expected name to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestMinMaxOnStrings(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required,min=2,max=5"`
	}
	if errs := validate.Struct(in{Name: "a"}); !validate.HasErrors(errs) {
		t.Error("expected 1-char name to fail min=2")
	}
	if errs := validate.Struct(in{Name: "toolong"}); !validate.HasErrors(errs) {
		t.Error("expected 7-char name to fail max=5")
	}
	if errs := validate.Struct(in{Name: "Asha"}); validate.HasErrors(errs) {
		t.Errorf("expected 4-char name to pass, got: %v", errs)
	}
}

func TestConfirmedRule(t *testing.T) {
	type in struct {
		Password             string `json:"password"              validate:"required,min=4"`
		PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
	}
	if errs := validate.Struct(in{Password: "secret", PasswordConfirmation: "wrong"}); !validate.HasErrors(errs) {
		t.Error("expected confirmation mismatch to fail")
	}
	if errs := validate.Struct(in{Password: "secret", PasswordConfirmation: "secret"}); validate.HasErrors(errs) {
		t.Errorf("expected matching confirmation to pass: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Nickname string `json:"nickname" validate:"nullable,min=3"`
	}
	if errs := validate.Struct(in{Nickname: ""}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable to pass: %v", errs)
	}
	if errs := validate.Struct(in{Nickname: "ab"}); !validate.HasErrors(errs) {
		t.Error("expected short non-empty nickname to fail")
	}
}

func TestFirstFailingRuleWinsPerField(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{})
	if errs["email"] != "The email field is required." {
		t.Errorf("expected required message first, got %q", errs["email"])
	}
}
