package config

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs struct tag validation and reports every violation
// as a single CONFIG_INVALID error
func validateStruct(v interface{}, source string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Wrapf(err, apperrors.ErrConfigInvalid, "invalid configuration in %s", source)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return apperrors.Newf(apperrors.ErrConfigInvalid, "invalid configuration in %s: %s", source, strings.Join(problems, "; ")).
		WithDetail("problems", problems)
}
