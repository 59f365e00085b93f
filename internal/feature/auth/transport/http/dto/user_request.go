package dto

import "url_shortener/internal/feature/auth/domain/entity"

// RegisterReq は /users のリクエストボディです。
type RegisterReq struct {
	UserName string `json:"user_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserReq は /users/me の更新リクエストです。省略したフィールドは変更されません。
// JSONボディとクエリ/フォームパラメータの両方を受け付けます。
type UpdateUserReq struct {
	Email    string `form:"email" json:"email" binding:"omitempty,email,max=100"`
	Password string `form:"password" json:"password"`
}

// UserRes はユーザーの公開表現です。パスワードハッシュは含みません。
type UserRes struct {
	ID       uint   `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

// NewUserRes converts a stored user into its public form.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{ID: u.ID, UserName: u.Username, Email: u.Email}
}
