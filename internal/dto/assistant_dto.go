package dto

type AskRequest struct {
	Question string `json:"question" validate:"required,min=1,max=2000"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}
