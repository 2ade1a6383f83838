package middleware

import (
	"errors"
	"net/http"
	"time"

	"storefront/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const CtxSessionIDKey = "session_id" // string

// Session はHS256で署名したcookieからセッションIDを取り出す。
// cookieが無い・壊れている・期限切れなら新しいIDを発行してcookieを付け直す。
func Session(cfg config.SessionConfig) echo.MiddlewareFunc {
	secret := []byte(cfg.Secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if ck, err := c.Cookie(cfg.CookieName); err == nil && ck.Value != "" {
				if v, err := ParseSessionToken(ck.Value, secret); err == nil {
					sid = v
				}
			}

			if sid == "" {
				sid = uuid.NewString()
				token, expiresAt, err := IssueSessionToken(sid, secret, cfg.TTL, time.Now())
				if err != nil {
					return c.JSON(http.StatusInternalServerError, errorJSON("session error"))
				}
				c.SetCookie(&http.Cookie{
					Name:     cfg.CookieName,
					Value:    token,
					Path:     "/",
					Expires:  expiresAt,
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			//contextへ保存
			c.Set(CtxSessionIDKey, sid)
			return next(c)
		}
	}
}

// SessionID はハンドラ側で使う
func SessionID(c echo.Context) (string, bool) {
	v, ok := c.Get(CtxSessionIDKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// セッションIDを sub に入れたJWTを作る
func IssueSessionToken(sessionID string, secret []byte, ttl time.Duration, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(ttl)

	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// 署名・期限・sub（UUID）を検証してセッションIDを返す
func ParseSessionToken(raw string, secret []byte) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", errors.New("invalid session token")
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", errors.New("invalid sub")
	}
	return claims.Subject, nil
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
