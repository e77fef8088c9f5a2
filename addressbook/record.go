package addressbook

import (
	"fmt"
	"strings"

	"assistant/errs"
)

var (
	ErrEmptyName     = errs.Errorf(errs.EINVALID, "Contact name must not be empty")
	ErrPhoneNotFound = errs.Errorf(errs.ENOTFOUND, "Phone number not found")
)

// Record is one contact: an immutable name, an ordered list of phone
// numbers and an optional birthday.
type Record struct {
	name     string
	phones   []Phone
	birthday Birthday
}

func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Record{name: name}, nil
}

func (r *Record) Name() string { return r.name }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

func (r *Record) Birthday() (Birthday, bool) {
	return r.birthday, !r.birthday.IsZero()
}

// AddPhone validates s and appends it. Duplicates are permitted.
func (r *Record) AddPhone(s string) error {
	p, err := NewPhone(s)
	if err != nil {
		return err
	}
	r.append(p)
	return nil
}

// append is the single mutation path for the phone list.
func (r *Record) append(p Phone) {
	r.phones = append(r.phones, p)
}

// FindPhone returns the first phone matching s exactly.
func (r *Record) FindPhone(s string) (Phone, bool) {
	if i := r.indexOf(s); i >= 0 {
		return r.phones[i], true
	}
	return "", false
}

// RemovePhone removes the first phone matching s exactly.
func (r *Record) RemovePhone(s string) error {
	i := r.indexOf(s)
	if i < 0 {
		return ErrPhoneNotFound
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces the first phone matching oldPhone with newPhone,
// moving it to the end of the list. The replacement is validated before
// anything is removed, so a rejected newPhone leaves the list untouched.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	i := r.indexOf(oldPhone)
	if i < 0 {
		return ErrPhoneNotFound
	}
	p, err := NewPhone(newPhone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	r.append(p)
	return nil
}

// SetBirthday validates s and unconditionally replaces any existing
// birthday.
func (r *Record) SetBirthday(s string) error {
	b, err := NewBirthday(s)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

func (r *Record) String() string {
	phones := "No phones"
	if len(r.phones) > 0 {
		parts := make([]string, len(r.phones))
		for i, p := range r.phones {
			parts[i] = p.String()
		}
		phones = strings.Join(parts, "; ")
	}

	birthday := "No birthday"
	if !r.birthday.IsZero() {
		birthday = r.birthday.String()
	}

	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s", r.name, phones, birthday)
}

func (r *Record) indexOf(s string) int {
	for i, p := range r.phones {
		if p.String() == s {
			return i
		}
	}
	return -1
}
