package addressbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant/addressbook"
)

func newRecord(t *testing.T, name string, phones ...string) *addressbook.Record {
	t.Helper()
	r, err := addressbook.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func phoneStrings(r *addressbook.Record) []string {
	phones := r.Phones()
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.String()
	}
	return out
}

func TestNewRecord(t *testing.T) {
	t.Run("keeps the name", func(t *testing.T) {
		r, err := addressbook.NewRecord("John")

		require.NoError(t, err)
		assert.Equal(t, "John", r.Name())
	})

	t.Run("rejects empty and blank names", func(t *testing.T) {
		for _, name := range []string{"", "   "} {
			_, err := addressbook.NewRecord(name)
			assert.Equal(t, addressbook.ErrEmptyName, err)
		}
	})
}

func TestRecord_AddPhone(t *testing.T) {
	t.Run("appends in insertion order", func(t *testing.T) {
		r := newRecord(t, "John", "1234567890", "0987654321")

		assert.Equal(t, []string{"1234567890", "0987654321"}, phoneStrings(r))
	})

	t.Run("permits duplicates", func(t *testing.T) {
		r := newRecord(t, "John", "1234567890", "1234567890")

		assert.Len(t, r.Phones(), 2)
	})

	t.Run("rejects invalid phone", func(t *testing.T) {
		r := newRecord(t, "John")

		err := r.AddPhone("123")

		assert.Equal(t, addressbook.ErrInvalidPhone, err)
		assert.Empty(t, r.Phones())
	})
}

func TestRecord_FindPhone(t *testing.T) {
	r := newRecord(t, "John", "1234567890")

	p, ok := r.FindPhone("1234567890")
	assert.True(t, ok)
	assert.Equal(t, "1234567890", p.String())

	_, ok = r.FindPhone("0000000000")
	assert.False(t, ok)
}

func TestRecord_RemovePhone(t *testing.T) {
	t.Run("removes the first exact match", func(t *testing.T) {
		r := newRecord(t, "John", "1234567890", "0987654321", "1234567890")

		require.NoError(t, r.RemovePhone("1234567890"))

		assert.Equal(t, []string{"0987654321", "1234567890"}, phoneStrings(r))
	})

	t.Run("fails when nothing matches", func(t *testing.T) {
		r := newRecord(t, "John", "1234567890")

		err := r.RemovePhone("0000000000")

		assert.Equal(t, addressbook.ErrPhoneNotFound, err)
		assert.Len(t, r.Phones(), 1)
	})
}

func TestRecord_EditPhone(t *testing.T) {
	t.Run("replaces the match", func(t *testing.T) {
		r := newRecord(t, "John", "1234567890", "0987654321")

		require.NoError(t, r.EditPhone("1234567890", "5555555555"))

		assert.Equal(t, []string{"0987654321", "5555555555"}, phoneStrings(r))
	})

	t.Run("fails when the old phone is absent", func(t *testing.T) {
		r := newRecord(t, "John", "1234567890")

		err := r.EditPhone("0000000000", "5555555555")

		assert.Equal(t, addressbook.ErrPhoneNotFound, err)
		assert.Equal(t, []string{"1234567890"}, phoneStrings(r))
	})

	t.Run("is all-or-nothing when the new phone is invalid", func(t *testing.T) {
		r := newRecord(t, "John", "1234567890")

		err := r.EditPhone("1234567890", "bad")

		assert.Equal(t, addressbook.ErrInvalidPhone, err)
		assert.Equal(t, []string{"1234567890"}, phoneStrings(r), "old phone must still be present")
	})
}

func TestRecord_SetBirthday(t *testing.T) {
	r := newRecord(t, "John")

	_, ok := r.Birthday()
	assert.False(t, ok)

	require.NoError(t, r.SetBirthday("12.06.2024"))
	b, ok := r.Birthday()
	assert.True(t, ok)
	assert.Equal(t, "12.06.2024", b.String())

	t.Run("replaces an existing birthday", func(t *testing.T) {
		require.NoError(t, r.SetBirthday("01.01.1990"))

		b, ok := r.Birthday()
		assert.True(t, ok)
		assert.Equal(t, "01.01.1990", b.String())
	})

	t.Run("keeps the old birthday on invalid input", func(t *testing.T) {
		err := r.SetBirthday("31.02.2024")

		assert.Equal(t, addressbook.ErrInvalidBirthday, err)
		b, ok := r.Birthday()
		assert.True(t, ok)
		assert.Equal(t, "01.01.1990", b.String())
	})
}

func TestRecord_String(t *testing.T) {
	t.Run("without phones or birthday", func(t *testing.T) {
		r := newRecord(t, "John")

		assert.Equal(t, "Contact name: John, phones: No phones, birthday: No birthday", r.String())
	})

	t.Run("with phones and birthday", func(t *testing.T) {
		r := newRecord(t, "John", "1234567890", "0987654321")
		require.NoError(t, r.SetBirthday("12.06.2024"))

		assert.Equal(t, "Contact name: John, phones: 1234567890; 0987654321, birthday: 12.06.2024", r.String())
	})
}
