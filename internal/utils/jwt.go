package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer    = "miao-bbq-server"
	adminTokenType = "admin_login"
)

// AdminClaims 管理后台登录令牌。
type AdminClaims struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Superuser bool   `json:"superuser"`
	Type      string `json:"type"`
	jwt.RegisteredClaims
}

func getSecret() []byte {
	return []byte(config.Get().JWT.Secret)
}

// AdminTokenTTL 读取配置的令牌有效期，未配置时为 24 小时。
func AdminTokenTTL() time.Duration {
	hours := config.Get().JWT.ExpirationHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func GenerateAdminToken(id uint, username string, superuser bool, duration time.Duration) (string, error) {
	secret := getSecret()
	if len(secret) == 0 {
		return "", errors.New("jwt secret 未配置")
	}
	claims := AdminClaims{
		ID:        id,
		Username:  username,
		Superuser: superuser,
		Type:      adminTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseAdminToken(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getSecret(), nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Type != adminTokenType {
		return nil, errors.New("invalid token type")
	}
	return claims, nil
}
