// Package auth はパスワード認証、アクセストークンの発行・検証を提供する。
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword はパスワードのbcryptハッシュをデフォルトコストで生成する。
// ハッシュにはソルトが含まれるため、同一パスワードでも呼び出しごとに異なる値となる。
func HashPassword(password string) (string, error) {
	return HashPasswordCost(password, bcrypt.DefaultCost)
}

// HashPasswordCost は指定コストでパスワードのbcryptハッシュを生成する。
// costがbcrypt.MinCost未満（0を含む）の場合はライブラリのデフォルトコストが適用される。
func HashPasswordCost(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword は平文パスワードがハッシュと一致するかを検証する。
// 不一致・ハッシュ形式不正のいずれもfalseを返す。
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
