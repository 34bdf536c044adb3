package dto

import "github.com/google/uuid"

type AccountResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
}

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginResponse struct {
	Account AccountResponse   `json:"account"`
	Tokens  TokenPairResponse `json:"tokens"`
}
