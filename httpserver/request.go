package httpserver

type AddContactRequest struct {
	Name  string `json:"name" validate:"required,notblank,max=100"`
	Phone string `json:"phone" validate:"required,phone"`
}

type AddPhoneRequest struct {
	Phone string `json:"phone" validate:"required,phone"`
}

type ChangePhoneRequest struct {
	OldPhone string `json:"old_phone" validate:"required,phone"`
	NewPhone string `json:"new_phone" validate:"required,phone"`
}

type SetBirthdayRequest struct {
	Birthday string `json:"birthday" validate:"required,datetime=02.01.2006"`
}
