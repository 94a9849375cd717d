package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as informações carregadas no token dos operadores da API
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
