package validation

import (
	"EduPlatform/internal/delivery/http/dto"
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register installs the custom rules on gin's validator engine.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validation: unexpected binding engine")
	}
	Apply(v)
	return nil
}

func Apply(v *validator.Validate) {
	v.RegisterStructValidation(quizStructLevel, dto.QuizRequest{})
}

// quizStructLevel checks that the correct option indexes the options.
func quizStructLevel(sl validator.StructLevel) {
	q := sl.Current().Interface().(dto.QuizRequest)
	if q.CorrectOption >= len(q.Options) {
		sl.ReportError(q.CorrectOption, "CorrectOption", "correctOption", "correct_option", "")
	}
}
