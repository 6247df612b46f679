package handler

import (
	"errors"

	"chessclub/backend/internal/pgn"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding tags used by the request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	return v.RegisterValidation("pgn", validPGN)
}

// validPGN accepts text that parses as a game with at least one legal move.
func validPGN(fl validator.FieldLevel) bool {
	_, err := pgn.Parse(fl.Field().String())
	return err == nil
}
