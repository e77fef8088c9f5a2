package addressbook

import (
	"encoding/json"
	"time"

	"assistant/errs"
)

// DateLayout is the only birthday representation accepted and emitted at
// the boundary: two-digit day, two-digit month, four-digit year.
const DateLayout = "02.01.2006"

var (
	ErrInvalidPhone    = errs.Errorf(errs.EINVALID, "Phone number must be 10 digits")
	ErrInvalidBirthday = errs.Errorf(errs.EINVALID, "Invalid date. Ensure the date is valid and in DD.MM.YYYY format")
)

// Phone is a validated phone number: exactly 10 decimal digits, no
// separators, no country code. The zero value is invalid; construct
// through NewPhone.
type Phone string

func NewPhone(s string) (Phone, error) {
	if len(s) != 10 {
		return "", ErrInvalidPhone
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", ErrInvalidPhone
		}
	}
	return Phone(s), nil
}

func (p Phone) String() string { return string(p) }

// Birthday is a calendar date validated at construction. It renders only
// in DateLayout, including over JSON.
type Birthday struct {
	date time.Time
}

func NewBirthday(s string) (Birthday, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return Birthday{}, ErrInvalidBirthday
	}
	return Birthday{date: d}, nil
}

func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) IsZero() bool { return b.date.IsZero() }

func (b Birthday) String() string { return b.date.Format(DateLayout) }

func (b Birthday) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Birthday) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewBirthday(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
