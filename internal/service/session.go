// File: internal/service/session.go
package service

import (
	"context"
	"fmt"
	"time"

	"portfolio-blog/internal/cache"
	"portfolio-blog/internal/database"
	"portfolio-blog/internal/model"
	"portfolio-blog/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookieName 瀏覽器攜帶的 session cookie 名稱
const SessionCookieName = "pb_session"

const sessionKeyPrefix = "session:"

// sessionClaims 定義 session cookie JWT 負載內容
type sessionClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// IssueSession 為使用者建立 session：
// 產生隨機 session id 寫入 Redis（值為 user id，帶 TTL），
// 並回傳以 secret 簽章、內含 session id 的 cookie 值
func IssueSession(ctx context.Context, rdb cache.Cache, secret string, userID int, ttl time.Duration) (string, error) {
	sid := uuid.NewString()
	if err := rdb.Set(ctx, sessionKeyPrefix+sid, userID, ttl).Err(); err != nil {
		return "", fmt.Errorf("IssueSession: %w", err)
	}

	now := time.Now()
	claims := sessionClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ResolveSession 將 cookie 值還原為使用者
// 任何失敗（簽章錯誤、過期、Redis 無此 session、使用者已刪除）
// 都回傳 nil 代表匿名，不回傳錯誤
func ResolveSession(ctx context.Context, db database.DB, rdb cache.Cache, secret, cookieValue string) *model.User {
	sid, err := parseSessionID(secret, cookieValue)
	if err != nil {
		return nil
	}
	userID, err := rdb.Get(ctx, sessionKeyPrefix+sid).Int()
	if err != nil {
		return nil
	}
	user, err := store.GetUserByID(ctx, db, userID)
	if err != nil {
		return nil
	}
	return user
}

// RevokeSession 使 session 失效；cookie 值無法解析時視為已登出
func RevokeSession(ctx context.Context, rdb cache.Cache, secret, cookieValue string) error {
	sid, err := parseSessionID(secret, cookieValue)
	if err != nil {
		return nil
	}
	if err := rdb.Del(ctx, sessionKeyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("RevokeSession: %w", err)
	}
	return nil
}

func parseSessionID(secret, cookieValue string) (string, error) {
	token, err := jwt.ParseWithClaims(cookieValue, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.SID == "" {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.SID, nil
}
