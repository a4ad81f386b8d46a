// Package model holds the rows stored in Postgres and the request payloads
// accepted by the HTTP API. Payloads validate themselves with
// go-playground/validator; field errors are reported under their JSON name.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				continue
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return v
}

// IDParam binds the :id path parameter.
type IDParam struct {
	ID int64 `param:"id" json:"-" validate:"required,min=1"`
}

func (p *IDParam) Validate() error {
	return validate.Struct(p)
}

// Empty is used by routes without input.
type Empty struct{}

func (e *Empty) Validate() error {
	return nil
}
