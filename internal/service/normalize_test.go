package service

import (
	"strings"
	"testing"

	dom "Tasker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNormalizeCreate(t *testing.T) {
	t.Run("trims title and description", func(t *testing.T) {
		title, desc, err := normalizeCreate("  Buy milk  ", "  2 liters  ")
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", title)
		require.NotNil(t, desc)
		assert.Equal(t, "2 liters", *desc)
	})

	t.Run("blank description becomes unset", func(t *testing.T) {
		_, desc, err := normalizeCreate("x", "   ")
		require.NoError(t, err)
		assert.Nil(t, desc)
	})

	t.Run("missing title", func(t *testing.T) {
		_, _, err := normalizeCreate("", "")
		var ve *dom.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "title", ve.Field)
	})

	t.Run("whitespace-only title", func(t *testing.T) {
		_, _, err := normalizeCreate("   ", "")
		require.Error(t, err)
	})

	t.Run("title over limit rejected, trimmed padding does not count", func(t *testing.T) {
		padded := "  " + strings.Repeat("a", dom.MaxTitleLen) + "  "
		title, _, err := normalizeCreate(padded, "")
		require.NoError(t, err)
		assert.Len(t, title, dom.MaxTitleLen)

		_, _, err = normalizeCreate(strings.Repeat("a", dom.MaxTitleLen+1), "")
		require.Error(t, err)
	})

	t.Run("description over limit", func(t *testing.T) {
		_, _, err := normalizeCreate("x", strings.Repeat("d", dom.MaxDescriptionLen+1))
		var ve *dom.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "description", ve.Field)
	})
}

func TestNormalizeUpdate(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		_, err := normalizeUpdate(dom.TodoPatch{})
		require.EqualError(t, err, "at least one field required")
	})

	t.Run("blank title counts as a field, then fails its own rule", func(t *testing.T) {
		_, err := normalizeUpdate(dom.TodoPatch{Title: strPtr("   ")})
		var ve *dom.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "title", ve.Field)
	})

	t.Run("title is trimmed", func(t *testing.T) {
		out, err := normalizeUpdate(dom.TodoPatch{Title: strPtr("  New title  ")})
		require.NoError(t, err)
		require.NotNil(t, out.Title)
		assert.Equal(t, "New title", *out.Title)
	})

	t.Run("blank description clears instead of storing empty", func(t *testing.T) {
		out, err := normalizeUpdate(dom.TodoPatch{Description: strPtr("  "), DescriptionSet: true})
		require.NoError(t, err)
		assert.True(t, out.DescriptionSet)
		assert.Nil(t, out.Description)
	})

	t.Run("completed only", func(t *testing.T) {
		out, err := normalizeUpdate(dom.TodoPatch{Completed: boolPtr(true)})
		require.NoError(t, err)
		assert.Nil(t, out.Title)
		assert.False(t, out.DescriptionSet)
		require.NotNil(t, out.Completed)
		assert.True(t, *out.Completed)
	})
}
