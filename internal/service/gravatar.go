// File: internal/service/gravatar.go
package service

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GravatarURL 依 email 產生 Gravatar 頭像網址
// email 先 trim 再轉小寫；size 為像素，rating g，預設圖 retro
func GravatarURL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=retro&r=g", sum, size)
}
