package dto

type CustomerRequest struct {
	FullName       string `json:"full_name"       validate:"required,max=120"`
	WhatsappNumber string `json:"whatsapp_number" validate:"required,max=32"`
	PhoneNumber    string `json:"phone_number"    validate:"required,max=32"`
	Address        string `json:"address"         validate:"required,max=250"`
}

type CustomerResponse struct {
	ID             uint   `json:"id"`
	FullName       string `json:"full_name"`
	WhatsappNumber string `json:"whatsapp_number"`
	PhoneNumber    string `json:"phone_number"`
	Address        string `json:"address"`
	CreatedAt      string `json:"created_at"`
}
