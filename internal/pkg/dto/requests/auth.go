package requests

type Login struct {
	UserID string `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=doctor receptionist admin"`
}
