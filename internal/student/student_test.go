package student

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Valid(t *testing.T) {
	tests := []struct {
		name string
		age  int
		gpa  float64
	}{
		{"lower bounds", 15, 0.0},
		{"upper bounds", 30, 4.5},
		{"typical", 16, 3.9},
		{"passing threshold", 22, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New("Ada Lovelace", "Ada", "Lovelace", tt.age, tt.gpa)
			require.NoError(t, err)

			assert.Equal(t, "Ada Lovelace", s.FullName())
			assert.Equal(t, "Ada", s.FirstName())
			assert.Equal(t, "Lovelace", s.LastName())
			assert.Equal(t, tt.age, s.Age())
			assert.Equal(t, tt.gpa, s.GPA())
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name                          string
		fullName, firstName, lastName string
		age                           int
		gpa                           float64
		wantKind                      error
		wantField                     string
	}{
		{"empty full name", "", "Ada", "Lovelace", 20, 3.0, ErrInvalidName, "fullName"},
		{"empty first name", "Ada Lovelace", "", "Lovelace", 20, 3.0, ErrInvalidName, "firstName"},
		{"empty last name", "Ada Lovelace", "Ada", "", 20, 3.0, ErrInvalidName, "lastName"},
		{"age below range", "Ada Lovelace", "Ada", "Lovelace", 14, 3.0, ErrInvalidAge, "age"},
		{"age above range", "Ada Lovelace", "Ada", "Lovelace", 31, 3.0, ErrInvalidAge, "age"},
		{"age far above range", "Ada Lovelace", "Ada", "Lovelace", 50, 3.0, ErrInvalidAge, "age"},
		{"negative age", "Ada Lovelace", "Ada", "Lovelace", -1, 3.0, ErrInvalidAge, "age"},
		{"gpa below range", "Ada Lovelace", "Ada", "Lovelace", 20, -0.1, ErrInvalidGPA, "gpa"},
		{"gpa above range", "Ada Lovelace", "Ada", "Lovelace", 20, 4.51, ErrInvalidGPA, "gpa"},
		{"gpa NaN", "Ada Lovelace", "Ada", "Lovelace", 20, math.NaN(), ErrInvalidGPA, "gpa"},
		{"gpa +Inf", "Ada Lovelace", "Ada", "Lovelace", 20, math.Inf(1), ErrInvalidGPA, "gpa"},
		{"name checked before age", "", "Ada", "Lovelace", 99, 3.0, ErrInvalidName, "fullName"},
		{"age checked before gpa", "Ada Lovelace", "Ada", "Lovelace", 99, 9.9, ErrInvalidAge, "age"},
		{"name checked before gpa", "Ada Lovelace", "Ada", "", 20, -1, ErrInvalidName, "lastName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.fullName, tt.firstName, tt.lastName, tt.age, tt.gpa)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Equal(t, Student{}, s)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestNew_OutOfRangeSweep(t *testing.T) {
	for age := -5; age <= 60; age++ {
		_, err := New("A B", "A", "B", age, 3.0)
		if age >= MinAge && age <= MaxAge {
			assert.NoError(t, err, "age %d", age)
		} else {
			assert.ErrorIs(t, err, ErrInvalidAge, "age %d", age)
		}
	}

	for i := -20; i <= 60; i++ {
		gpa := float64(i) / 10
		_, err := New("A B", "A", "B", 20, gpa)
		if gpa >= MinGPA && gpa <= MaxGPA {
			assert.NoError(t, err, "gpa %v", gpa)
		} else {
			assert.ErrorIs(t, err, ErrInvalidGPA, "gpa %v", gpa)
		}
	}
}

func TestValidationError_Message(t *testing.T) {
	_, err := New("Ada Lovelace", "Ada", "Lovelace", 40, 3.0)
	require.Error(t, err)
	assert.Equal(t, "student: invalid age 40: must be between 15 and 30", err.Error())

	_, err = New("Ada Lovelace", "Ada", "Lovelace", 20, 5)
	require.Error(t, err)
	assert.Equal(t, "student: invalid gpa 5: must be between 0.0 and 4.5", err.Error())

	_, err = New("Ada Lovelace", "", "Lovelace", 20, 3)
	require.Error(t, err)
	assert.Equal(t, "student: invalid name: firstName cannot be empty", err.Error())
}

func TestWillPassSemester(t *testing.T) {
	tests := []struct {
		gpa  float64
		want bool
	}{
		{0.0, false},
		{2.0, false},
		{2.49, false},
		{2.5, true},
		{3.0, true},
		{4.5, true},
	}

	for _, tt := range tests {
		s, err := New("A B", "A", "B", 20, tt.gpa)
		require.NoError(t, err)
		assert.Equal(t, tt.want, s.WillPassSemester(), "gpa %v", tt.gpa)
	}
}

func TestString(t *testing.T) {
	s, err := New("Smart Student", "Smart", "Student", 16, 4.2)
	require.NoError(t, err)
	assert.Equal(t, "Smart Student (4.2)", s.String())
}
