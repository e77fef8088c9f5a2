package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"assistant/addressbook"
	"assistant/httpserver"
	"assistant/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{AppEnv: "local"}
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) httpserver.APIResponse {
	t.Helper()
	var resp httpserver.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func decodeAPIResult(t *testing.T, result interface{}, out interface{}) {
	t.Helper()
	data, err := json.Marshal(result)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

type MockContactService struct {
	mock.Mock
}

var _ addressbook.Service = (*MockContactService)(nil)

func (m *MockContactService) AddContact(ctx context.Context, name, phone string) (bool, error) {
	args := m.Called(ctx, name, phone)
	return args.Bool(0), args.Error(1)
}

func (m *MockContactService) AddPhone(ctx context.Context, name, phone string) error {
	args := m.Called(ctx, name, phone)
	return args.Error(0)
}

func (m *MockContactService) ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error {
	args := m.Called(ctx, name, oldPhone, newPhone)
	return args.Error(0)
}

func (m *MockContactService) RemovePhone(ctx context.Context, name, phone string) error {
	args := m.Called(ctx, name, phone)
	return args.Error(0)
}

func (m *MockContactService) Phones(ctx context.Context, name string) ([]addressbook.Phone, error) {
	args := m.Called(ctx, name)
	phones, _ := args.Get(0).([]addressbook.Phone)
	return phones, args.Error(1)
}

func (m *MockContactService) SetBirthday(ctx context.Context, name, birthday string) error {
	args := m.Called(ctx, name, birthday)
	return args.Error(0)
}

func (m *MockContactService) Birthday(ctx context.Context, name string) (addressbook.Birthday, bool, error) {
	args := m.Called(ctx, name)
	birthday, _ := args.Get(0).(addressbook.Birthday)
	return birthday, args.Bool(1), args.Error(2)
}

func (m *MockContactService) Contact(ctx context.Context, name string) (addressbook.ContactView, error) {
	args := m.Called(ctx, name)
	contact, _ := args.Get(0).(addressbook.ContactView)
	return contact, args.Error(1)
}

func (m *MockContactService) Contacts(ctx context.Context) ([]addressbook.ContactView, error) {
	args := m.Called(ctx)
	contacts, _ := args.Get(0).([]addressbook.ContactView)
	return contacts, args.Error(1)
}

func (m *MockContactService) DeleteContact(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockContactService) DescribeAll(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockContactService) UpcomingBirthdays(ctx context.Context) ([]addressbook.Greeting, error) {
	args := m.Called(ctx)
	upcoming, _ := args.Get(0).([]addressbook.Greeting)
	return upcoming, args.Error(1)
}
