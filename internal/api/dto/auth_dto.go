package dto

type LoginDTO struct {
	Username string `json:"username" binding:"required" validate:"min=1,max=50"`
	Password string `json:"password" binding:"required" validate:"min=1,max=100"`
}

// UpdateAdminDTO 管理员自助修改账号资料，三个字段均可选
type UpdateAdminDTO struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewUsername     string `json:"newUsername" validate:"omitempty,min=3,max=50"`
	NewEmail        string `json:"newEmail" validate:"omitempty,email"`
	NewPassword     string `json:"newPassword" validate:"omitempty,min=8,max=100"`
}

// UserDTO 对外暴露的用户信息，不含凭据字段
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

type LoginResult struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
