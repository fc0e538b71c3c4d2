package jwt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session identidad emitida en el login y adjunta a cada petición
// autorizada. Permissions lleva el JSON del mapa efectivo para que el
// gate de autorización decida sin consultar la DB por request.
type Session struct {
	UserID      string
	Username    string
	Role        string
	Access      string
	Permissions json.RawMessage
}

// Claims incluye los claims estándar JWT más la sesión de la aplicación.
type Claims struct {
	jwt.RegisteredClaims
	UserID      string          `json:"user_id"`
	Username    string          `json:"username"`
	Role        string          `json:"role"`
	Access      string          `json:"access"`
	Permissions json.RawMessage `json:"permissions,omitempty"`
}

// Generate genera el token de sesión firmado (HS256).
func Generate(secret string, s Session, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:      s.UserID,
		Username:    s.Username,
		Role:        s.Role,
		Access:      s.Access,
		Permissions: s.Permissions,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve la sesión embebida.
// Retorna error si el token es inválido, expirado o con firma incorrecta.
func Parse(secret, tokenString string) (*Session, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return &Session{
		UserID:      claims.UserID,
		Username:    claims.Username,
		Role:        claims.Role,
		Access:      claims.Access,
		Permissions: claims.Permissions,
	}, nil
}
