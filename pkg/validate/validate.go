package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dimasfauzan/perpus-service/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	v := validator.New()
	// field names in messages follow the json tag, not the Go name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err
	}
	fields := make(map[string]string, len(vErrs))
	for _, fe := range vErrs {
		fields[fe.Field()] = messageFor(fe)
	}
	return errs.NewValidationError(fields)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "email":
		return "format email tidak valid"
	case "numeric":
		return "harus berupa angka"
	case "datetime":
		return "format tanggal tidak valid, gunakan " + fe.Param()
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	case "eqfield":
		return "konfirmasi tidak cocok"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("minimal %s karakter", fe.Param())
		}
		return "minimal " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("maksimal %s karakter", fe.Param())
		}
		return "maksimal " + fe.Param()
	default:
		return fmt.Sprintf("tidak valid (%s)", fe.Tag())
	}
}
