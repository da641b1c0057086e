package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Username             string `json:"username" validate:"required|alpha_dash|max:20"`
	Email                string `json:"email" validate:"required|email"`
	Password             string `json:"password" validate:"required|min:8|confirmed"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(signupForm{
		Username:             "jane_doe",
		Email:                "jane@example.com",
		Password:             "secret-pass",
		PasswordConfirmation: "secret-pass",
	})
	assert.False(t, HasErrors(errs))
}

func TestRequired(t *testing.T) {
	errs := Struct(signupForm{})
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestEmail(t *testing.T) {
	errs := Struct(struct {
		Email string `json:"email" validate:"required|email"`
	}{Email: "not-an-email"})
	assert.Equal(t, "The email must be a valid email address.", errs["email"])
}

func TestAlphaDash(t *testing.T) {
	errs := Struct(struct {
		Username string `json:"username" validate:"alpha_dash"`
	}{Username: "bad name!"})
	assert.Contains(t, errs, "username")
}

func TestConfirmedMismatch(t *testing.T) {
	errs := Struct(signupForm{
		Username:             "jane",
		Email:                "jane@example.com",
		Password:             "secret-pass",
		PasswordConfirmation: "different",
	})
	assert.Equal(t, "The password confirmation does not match.", errs["password"])
}

func TestNullableSkipsEmpty(t *testing.T) {
	type form struct {
		Phone string `json:"phone" validate:"nullable|numeric|digits_max:11"`
	}

	assert.False(t, HasErrors(Struct(form{})))
	assert.False(t, HasErrors(Struct(form{Phone: "0123456789"})))
	assert.True(t, HasErrors(Struct(form{Phone: "not-a-phone"})))
	assert.True(t, HasErrors(Struct(form{Phone: "012345678901234"})))
}

func TestMaxString(t *testing.T) {
	errs := Struct(struct {
		Note string `json:"note" validate:"max:5"`
	}{Note: "too long for sure"})
	assert.Contains(t, errs, "note")
}

func TestMinAndMaxNumeric(t *testing.T) {
	type form struct {
		Qty int `json:"qty" validate:"min:1|max:10"`
	}

	assert.True(t, HasErrors(Struct(form{Qty: 0})))
	assert.True(t, HasErrors(Struct(form{Qty: 11})))
	assert.False(t, HasErrors(Struct(form{Qty: 5})))
}

func TestIn(t *testing.T) {
	type form struct {
		Status string `json:"status" validate:"in:Pending,Delivered"`
	}

	assert.False(t, HasErrors(Struct(form{Status: "Pending"})))
	assert.True(t, HasErrors(Struct(form{Status: "Lost"})))
}

func TestFirstFailingRuleWins(t *testing.T) {
	errs := Struct(struct {
		Email string `json:"email" validate:"required|email"`
	}{})
	assert.Equal(t, "The email field is required.", errs["email"])
}
