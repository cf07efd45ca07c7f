package student

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata, so a
// single instance is shared.
var validate = validator.New()

// attributes carries the constructor input through the validator. Field
// order is the order in which failures are reported. The bounds mirror
// MinAge/MaxAge and MinGPA/MaxGPA; gte/lte also reject a NaN gpa.
type attributes struct {
	FullName  string  `validate:"required"`
	FirstName string  `validate:"required"`
	LastName  string  `validate:"required"`
	Age       int     `validate:"gte=15,lte=30"`
	GPA       float64 `validate:"gte=0,lte=4.5"`
}

type fieldKind struct {
	name string
	kind error
}

var fieldKinds = map[string]fieldKind{
	"FullName":  {"fullName", ErrInvalidName},
	"FirstName": {"firstName", ErrInvalidName},
	"LastName":  {"lastName", ErrInvalidName},
	"Age":       {"age", ErrInvalidAge},
	"GPA":       {"gpa", ErrInvalidGPA},
}

func (a attributes) check() error {
	err := validate.Struct(a)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	// Fields are walked in declaration order, so the first entry is the
	// highest-priority failure.
	fe := fieldErrs[0]
	fk, ok := fieldKinds[fe.StructField()]
	if !ok {
		return err
	}
	return &ValidationError{Field: fk.name, Value: fe.Value(), Kind: fk.kind}
}
