package validation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string `json:"name" validate:"required"`
	Code   string `json:"code" validate:"min=3,max=5"`
	Weight *int   `json:"weight" validate:"required,gte=0"`
	Note   string
}

func TestCheck(t *testing.T) {
	t.Parallel()

	weight := 2

	t.Run("valid struct", func(t *testing.T) {
		require.Nil(t, Check(sample{Name: "box", Code: "abcd", Weight: &weight}))
	})

	t.Run("collects every failing field by json name", func(t *testing.T) {
		errs := Check(sample{Code: "ab"})
		require.Len(t, errs, 3)
		require.Equal(t, "name", errs[0].Field)
		require.Equal(t, "required", errs[0].Tag)
		require.Equal(t, "code", errs[1].Field)
		require.Equal(t, "min", errs[1].Tag)
		require.Equal(t, "weight", errs[2].Field)
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		require.Nil(t, Check(sample{Name: "box", Code: "äöü", Weight: &weight}))
	})

	t.Run("negative number", func(t *testing.T) {
		negative := -1
		errs := Check(sample{Name: "box", Code: "abc", Weight: &negative})
		require.Len(t, errs, 1)
		require.Equal(t, "must be greater than or equal to 0", errs[0].Message)
	})
}

func TestIssues(t *testing.T) {
	t.Parallel()

	issues := Issues([]FieldError{{Field: "name", Tag: "required", Message: "is required"}})
	require.Len(t, issues, 1)
	require.Equal(t, "Invalid name", issues[0].Title)
	require.Equal(t, "name is required", issues[0].Detail)
}
