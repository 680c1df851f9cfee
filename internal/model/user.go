// Package model はドメインモデルを定義する。
package model

// User は登録済みアカウント（クレデンシャル）を表す。
// PasswordHashはbcryptハッシュであり、平文パスワードは一切保持しない。
// IsActiveは現時点では情報提供のみのフラグで、どのエンドポイントも強制しない。
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"is_active"`
}
