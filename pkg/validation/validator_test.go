package validation_test

import (
	"strings"
	"testing"

	"github.com/aretw0/tracker/pkg/domain"
	"github.com/aretw0/tracker/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	v := validation.New(validation.DefaultLimits())

	tests := []struct {
		name   string
		draft  domain.Draft
		fields []string
	}{
		{"Valid", domain.Draft{Title: "Build bridge", Description: "Cross the river", People: 3}, nil},
		{"People lower bound is inclusive", domain.Draft{Title: "t", Description: "long enough", People: 1}, nil},
		{"People upper bound is inclusive", domain.Draft{Title: "t", Description: "long enough", People: 5}, nil},
		{"Blank title", domain.Draft{Title: "   ", Description: "long enough", People: 2}, []string{"title"}},
		{"Description at the minimum", domain.Draft{Title: "t", Description: "12345", People: 2}, []string{"description"}},
		{"Description one past the minimum", domain.Draft{Title: "t", Description: "123456", People: 2}, nil},
		{"Missing description", domain.Draft{Title: "t", People: 2}, []string{"description"}},
		{"Too few people", domain.Draft{Title: "t", Description: "long enough", People: 0}, []string{"people"}},
		{"Too many people", domain.Draft{Title: "t", Description: "long enough", People: 6}, []string{"people"}},
		{"Everything wrong", domain.Draft{}, []string{"title", "description", "people"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.draft)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			var got []string
			for _, fe := range validation.Fields(err) {
				got = append(got, fe.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestValidator_MaxLengths(t *testing.T) {
	limits := validation.DefaultLimits()
	limits.TitleMaxLength = 4
	limits.DescriptionMaxLength = 10
	v := validation.New(limits)

	err := v.Validate(domain.Draft{Title: "abcde", Description: "01234567890", People: 1})
	fields := validation.Fields(err)
	require.Len(t, fields, 2)
	assert.Equal(t, "title", fields[0].Field)
	assert.Equal(t, "description", fields[1].Field)
	assert.Contains(t, fields[1].Error(), "at most 10")
}

func TestValidator_Normalize(t *testing.T) {
	v := validation.New(validation.DefaultLimits())

	clean, err := v.Normalize(domain.Draft{Title: "  \x1b[31mBuild\x07  ", Description: "Cross\x00 the river\n", People: 2})
	require.NoError(t, err)
	assert.Equal(t, "[31mBuild", clean.Title)
	assert.Equal(t, "Cross the river", clean.Description)

	_, err = v.Normalize(domain.Draft{Title: "ok", Description: "\xff\xfe", People: 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, validation.ErrInvalidUTF8)
}

func TestLimits_Check(t *testing.T) {
	assert.NoError(t, validation.DefaultLimits().Check())

	bad := validation.DefaultLimits()
	bad.PeopleMin = 6
	assert.Error(t, bad.Check())

	bad = validation.DefaultLimits()
	bad.DescriptionMaxLength = 3
	assert.Error(t, bad.Check())

	bad = validation.DefaultLimits()
	bad.DescriptionMinLength = -1
	assert.Error(t, bad.Check())
}

func TestSanitize_SizeLimit(t *testing.T) {
	tests := []struct {
		name      string
		inputSize int
		wantErr   bool
	}{
		{"Under Limit", validation.DefaultMaxInputSize - 1, false},
		{"Exact Limit", validation.DefaultMaxInputSize, false},
		{"Over Limit", validation.DefaultMaxInputSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validation.Sanitize(strings.Repeat("a", tt.inputSize), 0)
			if tt.wantErr {
				assert.ErrorIs(t, err, validation.ErrInputTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	_, err := validation.Sanitize("abcdef", 3)
	assert.ErrorIs(t, err, validation.ErrInputTooLarge)
}

func TestSanitize_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal Text", "Hello World", "Hello World"},
		{"Safe Controls", "Line1\nLine2\tTabbed", "Line1\nLine2\tTabbed"},
		{"ANSI Code", "\x1b[31mRed\x1b[0m", "[31mRed[0m"},
		{"Null Byte", "Null\x00Byte", "NullByte"},
		{"Carriage Return", "Dos\r", "Dos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.Sanitize(tt.input, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
