package request

type Register struct {
	Name     string `validate:"required,min=3"  json:"name"`
	Email    string `validate:"required,email"  json:"email"`
	Password string `validate:"required,min=8"  json:"password"`
}

type Login struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required"       json:"password"`
}
