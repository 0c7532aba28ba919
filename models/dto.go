package models

type LoginRequest struct {
	NomorMeja string `json:"nomorMeja" form:"nomor_meja" binding:"required"`
}

type LoginResponse struct {
	Token   string  `json:"token"`
	Session Session `json:"session"`
}
