package addressbook

import (
	"context"
	"sync"
	"time"

	"assistant/errs"
)

var ErrContactNotFound = errs.Errorf(errs.ENOTFOUND, "contact not found")

// Service is the contact book surface consumed by the CLI and HTTP
// front ends.
type Service interface {
	AddContact(ctx context.Context, name, phone string) (created bool, err error)
	AddPhone(ctx context.Context, name, phone string) error
	ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error
	RemovePhone(ctx context.Context, name, phone string) error
	Phones(ctx context.Context, name string) ([]Phone, error)
	SetBirthday(ctx context.Context, name, birthday string) error
	Birthday(ctx context.Context, name string) (Birthday, bool, error)
	Contact(ctx context.Context, name string) (ContactView, error)
	Contacts(ctx context.Context) ([]ContactView, error)
	DeleteContact(ctx context.Context, name string) error
	DescribeAll(ctx context.Context) (string, error)
	UpcomingBirthdays(ctx context.Context) ([]Greeting, error)
}

// ContactView is a read-only snapshot of a record, safe to hand across
// the service boundary.
type ContactView struct {
	Name     string    `json:"name"`
	Phones   []string  `json:"phones"`
	Birthday *Birthday `json:"birthday,omitempty"`
}

// Usecase implements Service over a single Book. Every operation takes
// the lock for its whole read-modify-write sequence, so a lookup and the
// mutation that follows are one atomic unit even when the book is shared
// between front ends.
type Usecase struct {
	mu   sync.RWMutex
	book *Book
	now  func() time.Time
}

var _ Service = (*Usecase)(nil)

type Option func(*Usecase)

// WithClock overrides the wall clock used by UpcomingBirthdays.
func WithClock(now func() time.Time) Option {
	return func(uc *Usecase) {
		uc.now = now
	}
}

func NewUsecase(book *Book, opts ...Option) *Usecase {
	uc := &Usecase{book: book, now: time.Now}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// AddContact adds phone to the contact called name, creating the contact
// when it does not exist yet. The phone is validated before a new record
// is created, so a rejected phone never leaves an empty contact behind.
func (uc *Usecase) AddContact(_ context.Context, name, phone string) (bool, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	p, err := NewPhone(phone)
	if err != nil {
		return false, err
	}

	r, ok := uc.book.Find(name)
	created := false
	if !ok {
		r, err = NewRecord(name)
		if err != nil {
			return false, err
		}
		uc.book.AddRecord(r)
		created = true
	}
	r.append(p)
	return created, nil
}

// AddPhone appends a phone to an existing contact.
func (uc *Usecase) AddPhone(_ context.Context, name, phone string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	r, ok := uc.book.Find(name)
	if !ok {
		return ErrContactNotFound
	}
	return r.AddPhone(phone)
}

func (uc *Usecase) ChangePhone(_ context.Context, name, oldPhone, newPhone string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	r, ok := uc.book.Find(name)
	if !ok {
		return ErrContactNotFound
	}
	return r.EditPhone(oldPhone, newPhone)
}

func (uc *Usecase) RemovePhone(_ context.Context, name, phone string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	r, ok := uc.book.Find(name)
	if !ok {
		return ErrContactNotFound
	}
	return r.RemovePhone(phone)
}

func (uc *Usecase) Phones(_ context.Context, name string) ([]Phone, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	r, ok := uc.book.Find(name)
	if !ok {
		return nil, ErrContactNotFound
	}
	return r.Phones(), nil
}

func (uc *Usecase) SetBirthday(_ context.Context, name, birthday string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	r, ok := uc.book.Find(name)
	if !ok {
		return ErrContactNotFound
	}
	return r.SetBirthday(birthday)
}

func (uc *Usecase) Birthday(_ context.Context, name string) (Birthday, bool, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	r, ok := uc.book.Find(name)
	if !ok {
		return Birthday{}, false, ErrContactNotFound
	}
	b, set := r.Birthday()
	return b, set, nil
}

func (uc *Usecase) Contact(_ context.Context, name string) (ContactView, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	r, ok := uc.book.Find(name)
	if !ok {
		return ContactView{}, ErrContactNotFound
	}
	return view(r), nil
}

func (uc *Usecase) Contacts(_ context.Context) ([]ContactView, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	records := uc.book.Records()
	views := make([]ContactView, len(records))
	for i, r := range records {
		views[i] = view(r)
	}
	return views, nil
}

func (uc *Usecase) DeleteContact(_ context.Context, name string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.book.Find(name); !ok {
		return ErrContactNotFound
	}
	uc.book.Delete(name)
	return nil
}

func (uc *Usecase) DescribeAll(_ context.Context) (string, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return uc.book.String(), nil
}

func (uc *Usecase) UpcomingBirthdays(_ context.Context) ([]Greeting, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return uc.book.UpcomingBirthdays(uc.now()), nil
}

func view(r *Record) ContactView {
	phones := make([]string, 0, len(r.phones))
	for _, p := range r.Phones() {
		phones = append(phones, p.String())
	}

	v := ContactView{Name: r.Name(), Phones: phones}
	if b, ok := r.Birthday(); ok {
		v.Birthday = &b
	}
	return v
}
