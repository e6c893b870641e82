package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Note  *string `json:"note,omitempty"`
	Page  int     `json:"page"`
	Kind  *string `json:"kind,omitempty"`
}

var sampleSchema = Schema{
	"ID":    "required,uuid",
	"Title": "required,min=1,max=5",
	"Note":  "omitempty,min=1",
	"Page":  "gte=1",
	"Kind":  "omitempty,oneof=income expense",
}

func newSampleValidator() *Validator {
	v := NewValidator()
	v.Register(sampleSchema, sampleRequest{})
	return v
}

func strPtr(s string) *string { return &s }

func TestValidate_OK(t *testing.T) {
	v := newSampleValidator()
	err := v.Validate(&sampleRequest{
		ID:    "8f14e45f-ceea-4e6a-9a3b-1c9b1f0e6c11",
		Title: "abc",
		Page:  1,
	})
	assert.NoError(t, err)
}

func TestValidate_AbsentOptionalFieldsPass(t *testing.T) {
	v := newSampleValidator()
	err := v.Validate(sampleRequest{ID: "8f14e45f-ceea-4e6a-9a3b-1c9b1f0e6c11", Title: "a", Page: 3})
	assert.NoError(t, err)
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	v := newSampleValidator()
	err := v.Validate(&sampleRequest{
		ID:    "not-a-uuid",
		Title: "too long",
		Note:  strPtr(""),
		Page:  0,
		Kind:  strPtr("gift"),
	})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))

	byField := map[string]FieldError{}
	for _, f := range verr.Fields {
		byField[f.Field] = f
	}
	assert.Len(t, byField, 5)
	assert.Equal(t, "uuid", byField["id"].Rule)
	assert.Equal(t, "max", byField["title"].Rule)
	assert.Equal(t, "5", byField["title"].Param)
	assert.Equal(t, "min", byField["note"].Rule)
	assert.Equal(t, "gte", byField["page"].Rule)
	assert.Equal(t, "oneof", byField["kind"].Rule)
	assert.Equal(t, "title must contain at most 5 character(s)", byField["title"].Message)
}

func TestValidate_Required(t *testing.T) {
	v := newSampleValidator()
	err := v.Validate(&sampleRequest{Page: 1})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 2)
	assert.Equal(t, "required", verr.Fields[0].Rule)
	assert.Equal(t, "id is required", verr.Fields[0].Message)
}

func TestValidate_UnregisteredType(t *testing.T) {
	v := NewValidator()
	err := v.Validate(&sampleRequest{})
	require.Error(t, err)

	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
