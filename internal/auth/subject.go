package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// Subject — идентичность, извлечённая из bearer-токена.
type Subject struct {
	ID   string
	Name string
}

// ParseSubject разбирает и проверяет подпись HS256-токена и возвращает субъекта.
// Любая проблема (пустой токен, битый формат, чужая подпись, отсутствие клеймов)
// даёт ok=false без ошибки: для вызывающих это единообразно "не аутентифицирован".
//
// ВНИМАНИЕ: срок действия токена сознательно НЕ проверяется — перенесённое
// операционное решение исходной системы. Известная слабость безопасности.
func ParseSubject(tokenString, secret string) (Subject, bool) {
	if tokenString == "" {
		return Subject{}, false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		return Subject{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Subject{}, false
	}
	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return Subject{}, false
	}
	name, ok := claims["username"].(string)
	if !ok || name == "" {
		return Subject{}, false
	}

	return Subject{ID: id, Name: name}, true
}

// SignSubject выпускает токен для субъекта. Используется тестами и dev-утилитами;
// в проде токены выпускает внешний сервис аутентификации.
func SignSubject(sub Subject, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  sub.ID,
		"username": sub.Name,
	})
	return token.SignedString([]byte(secret))
}
