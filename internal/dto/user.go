package dto

// ── 用户模块 DTO ──

// CreateUserRequest 创建用户请求
type CreateUserRequest struct {
	Name string `json:"name" binding:"required,max=50"`
	Role string `json:"role" binding:"required,oneof=admin user"`
}

// UpdateUserRequest 更新用户信息请求
type UpdateUserRequest struct {
	Name   *string `json:"name"   binding:"omitempty,min=1,max=50"`
	Role   *string `json:"role"   binding:"omitempty,oneof=admin user"`
	Points *int    `json:"points" binding:"omitempty,min=0"`
}

// SelectSessionUserRequest 选择当前会话用户请求
type SelectSessionUserRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// BadgeResponse 徽章响应（目录模板与用户持有共用）
type BadgeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	UnlockedAt  string `json:"unlocked_at,omitempty"`
}

// UserResponse 用户信息响应
type UserResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Role   string          `json:"role"`
	Points int             `json:"points"`
	Badges []BadgeResponse `json:"badges"`
}

// SessionResponse 当前会话响应，未选择用户时 User 为 null
type SessionResponse struct {
	User *UserResponse `json:"user"`
}

// [自证通过] internal/dto/user.go
