package domain

import "github.com/golang-jwt/jwt/v5"

const RoleAdmin = "admin"

// Claims são os dados carregados pelo token de operador das rotas administrativas
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
