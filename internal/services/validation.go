package services

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/isdelr/social-media-be/internal/models"
)

const (
	minPasswordLength = 4
	maxMessageLength  = 255
)

var (
	validate = newValidator()

	// Lengths are counted in characters (runes), not bytes.
	usernameRule    = "notblank"
	passwordRule    = "min=" + strconv.Itoa(minPasswordLength)
	messageTextRule = "notblank,max=" + strconv.Itoa(maxMessageLength)
)

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

func validAccountDetails(account models.Account) bool {
	return validate.Var(account.Username, usernameRule) == nil &&
		validate.Var(account.Password, passwordRule) == nil
}

func validMessageText(text string) bool {
	return validate.Var(text, messageTextRule) == nil
}
