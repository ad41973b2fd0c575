package validator

import (
	"ctchen222/tictactoe-minimax/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())
	if err := RegisterValidations(validate); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}

// RegisterValidations adds the custom tags used by request and config structs:
//
//	mark - a board cell, one of "", "X" or "O"
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("mark", validMark)
}

func validMark(fl validator.FieldLevel) bool {
	return game.PlayerMark(fl.Field().String()).Valid()
}
