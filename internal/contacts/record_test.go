package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, r.AddPhone(p))
	}
	return r
}

func phoneValues(r *Record) []string {
	var out []string
	for _, p := range r.Phones() {
		out = append(out, p.String())
	}
	return out
}

func TestNewRecordRejectsEmptyName(t *testing.T) {
	r, err := NewRecord("")
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordAddPhone(t *testing.T) {
	r := newTestRecord(t, "Ann", "0501234567", "0671234567")

	err := r.AddPhone("12345")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []string{"0501234567", "0671234567"}, phoneValues(r))
}

func TestRecordRemovePhone(t *testing.T) {
	t.Run("removes every equal phone", func(t *testing.T) {
		r := newTestRecord(t, "Ann", "0501234567", "0671234567", "0501234567")
		r.RemovePhone("0501234567")
		assert.Equal(t, []string{"0671234567"}, phoneValues(r))
	})

	t.Run("absent phone is a no-op", func(t *testing.T) {
		r := newTestRecord(t, "Ann", "0501234567")
		r.RemovePhone("0999999999")
		assert.Equal(t, []string{"0501234567"}, phoneValues(r))
	})

	t.Run("remove all", func(t *testing.T) {
		r := newTestRecord(t, "Ann", "0501234567", "0671234567")
		r.RemovePhones()
		assert.Empty(t, r.Phones())
	})
}

func TestRecordEditPhone(t *testing.T) {
	t.Run("replaces only the first match", func(t *testing.T) {
		r := newTestRecord(t, "Ann", "0501234567", "0501234567")
		require.NoError(t, r.EditPhone("0501234567", "0931112233"))
		assert.Equal(t, []string{"0931112233", "0501234567"}, phoneValues(r))
	})

	t.Run("absent old phone is a no-op", func(t *testing.T) {
		r := newTestRecord(t, "Ann", "0501234567")
		require.NoError(t, r.EditPhone("0999999999", "0931112233"))
		assert.Equal(t, []string{"0501234567"}, phoneValues(r))
	})

	t.Run("invalid new phone is rejected", func(t *testing.T) {
		r := newTestRecord(t, "Ann", "0501234567")
		assert.ErrorIs(t, r.EditPhone("0501234567", "abc"), ErrValidation)
		assert.Equal(t, []string{"0501234567"}, phoneValues(r))
	})
}

func TestRecordFindPhone(t *testing.T) {
	r := newTestRecord(t, "Ann", "0501234567")

	p, ok := r.FindPhone("0501234567")
	assert.True(t, ok)
	assert.Equal(t, "0501234567", p.String())

	_, ok = r.FindPhone("0671234567")
	assert.False(t, ok)
}

func TestRecordBirthday(t *testing.T) {
	r := newTestRecord(t, "Ann")

	_, ok := r.Birthday()
	assert.False(t, ok)

	require.NoError(t, r.SetBirthday("05.06.1990"))
	require.NoError(t, r.SetBirthday("07.08.1991"))
	assert.ErrorIs(t, r.SetBirthday("31.02.1991"), ErrValidation)

	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "07.08.1991", b.String())
}

func TestRecordString(t *testing.T) {
	r := newTestRecord(t, "Ann", "0501234567", "0671234567")
	assert.Equal(t, "Contact name: Ann, phones: 0501234567; 0671234567", r.String())

	require.NoError(t, r.SetBirthday("05.06.1990"))
	assert.Equal(t, "Contact name: Ann, phones: 0501234567; 0671234567, birthday: 05.06.1990", r.String())
}

func TestRecordPhonesReturnsCopy(t *testing.T) {
	r := newTestRecord(t, "Ann", "0501234567")
	phones := r.Phones()
	phones[0] = Phone{value: "0000000000"}
	assert.Equal(t, []string{"0501234567"}, phoneValues(r))
}
