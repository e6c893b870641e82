package common

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Schema maps a Go struct field name to its validator rule string, e.g.
// {"Title": "required,min=1,max=100"}. Optional fields are pointers with an
// "omitempty" rule.
type Schema map[string]string

// Validator runs registered schemas against request values.
type Validator struct {
	v *validator.Validate

	mu         sync.RWMutex
	registered map[reflect.Type]bool
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report failures under the name the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{v: v, registered: make(map[reflect.Type]bool)}
}

// Register binds a schema to one or more request struct types.
func (v *Validator) Register(schema Schema, types ...any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.v.RegisterStructValidationMapRules(schema, types...)
	for _, t := range types {
		v.registered[structType(t)] = true
	}
}

// Validate checks input against its schema and returns a *ValidationError
// listing every failing field.
func (v *Validator) Validate(input any) error {
	v.mu.RLock()
	ok := v.registered[structType(input)]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("no schema registered for %T", input)
	}

	err := v.v.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: messageFor(fe),
		})
	}
	return &ValidationError{Fields: out}
}

func structType(v any) reflect.Type {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

func messageFor(fe validator.FieldError) string {
	name := fe.Field()
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "min", "gte":
		if isText {
			return fmt.Sprintf("%s must contain at least %s character(s)", name, fe.Param())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s", name, fe.Param())
	case "max", "lte":
		if isText {
			return fmt.Sprintf("%s must contain at most %s character(s)", name, fe.Param())
		}
		return fmt.Sprintf("%s must be less than or equal to %s", name, fe.Param())
	case "uuid":
		return name + " must be a valid UUID"
	case "email":
		return name + " must be a valid email"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", name, fe.Param())
	default:
		return name + " is invalid"
	}
}
