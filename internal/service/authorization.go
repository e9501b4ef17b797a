// File: internal/service/authorization.go
package service

import (
	"errors"

	"portfolio-blog/internal/model"
)

// AdminUserID 唯一管理員的固定使用者 id
const AdminUserID = 1

// ErrForbidden 表示目前身分無權執行管理操作
var ErrForbidden = errors.New("forbidden")

// RequireAdmin 在每個管理路由 handler 開頭呼叫
// u 為 nil（匿名）或非管理員時回傳 ErrForbidden，呼叫端須轉為 403 且不得再碰資料
func RequireAdmin(u *model.User) error {
	if u == nil || u.ID != AdminUserID {
		return ErrForbidden
	}
	return nil
}
