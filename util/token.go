package util

import (
	"sync"
	"time"

	"vznx/config"
	"vznx/logutils"
	"vznx/model"

	jwt "github.com/golang-jwt/jwt/v5"
)

type (
	JWTClaims struct {
		UserID   string     `json:"ui"`
		Username string     `json:"un"`
		Role     model.Role `json:"rp"`
		jwt.RegisteredClaims
	}
	JWTMessage struct {
		UserID   string     `json:"userID"`   // User ID
		Username string     `json:"username"` // Login name
		Role     model.Role `json:"role"`     // Role in platform (e.g. guest, user, admin)
	}
)

// TokenManager signs access and refresh tokens with distinct secrets, so a
// token issued for one purpose never verifies as the other.
type TokenManager struct {
	accessSecret    string
	refreshSecret   string
	accessTokenTTL  int
	refreshTokenTTL int
}

var (
	once     sync.Once
	tokenMgr *TokenManager
)

func GetTokenMgr() *TokenManager {
	once.Do(func() {
		authConfig := config.GetConfig().Auth
		tokenMgr = NewTokenManager(authConfig.AccessTokenSecret,
			authConfig.RefreshTokenSecret,
			authConfig.AccessTokenExpiryHour,
			authConfig.RefreshTokenExpiryHour,
		)
	})
	return tokenMgr
}

func NewTokenManager(accessSecret, refreshSecret string, accessTokenTTL, refreshTokenTTL int) *TokenManager {
	return &TokenManager{
		accessSecret,
		refreshSecret,
		accessTokenTTL,
		refreshTokenTTL,
	}
}

func (tm *TokenManager) createToken(msg *JWTMessage, secret string, ttl int) (string, error) {
	expiresAt := time.Now().Add(time.Hour * time.Duration(ttl))

	claims := &JWTClaims{
		UserID:   msg.UserID,
		Username: msg.Username,
		Role:     msg.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// CreateTokens creates a new access token and a new refresh token
func (tm *TokenManager) CreateTokens(msg *JWTMessage) (
	accessToken string, refreshToken string, err error) {
	accessToken, err = tm.createToken(msg, tm.accessSecret, tm.accessTokenTTL)
	if err != nil {
		logutils.Log.Error(err)
		return "", "", err
	}
	refreshToken, err = tm.createToken(msg, tm.refreshSecret, tm.refreshTokenTTL)
	if err != nil {
		logutils.Log.Error(err)
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (tm *TokenManager) checkToken(requestToken, secret string) (JWTMessage, error) {
	claims := JWTClaims{}
	_, err := jwt.ParseWithClaims(requestToken, &claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	return JWTMessage{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, err
}

// CheckToken verifies an access token.
func (tm *TokenManager) CheckToken(requestToken string) (JWTMessage, error) {
	return tm.checkToken(requestToken, tm.accessSecret)
}

// CheckRefreshToken verifies a refresh token.
func (tm *TokenManager) CheckRefreshToken(requestToken string) (JWTMessage, error) {
	return tm.checkToken(requestToken, tm.refreshSecret)
}
