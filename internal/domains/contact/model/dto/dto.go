package dto

import (
	"atrium/internal/domains/contact/model"
	"atrium/shared/constant"
)

type CreateContactMessageRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"omitempty,max=40"`
	Subject  string `json:"subject"   validate:"required,max=200"`
	Message  string `json:"message"   validate:"required"`
}

func (c *CreateContactMessageRequest) ToModel() model.ContactMessage {
	return model.ContactMessage{
		FullName: c.FullName,
		Email:    c.Email,
		Phone:    c.Phone,
		Subject:  c.Subject,
		Message:  c.Message,
	}
}

type ContactMessageResponse struct {
	ID        int64  `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func (r *ContactMessageResponse) FromModel(model model.ContactMessage) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Subject = model.Subject
	r.Message = model.Message
	r.CreatedAt = model.CreatedAt.Format(constant.DateFormat)
}
