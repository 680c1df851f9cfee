package repository

import (
	"errors"
	"testing"

	"github.com/lib/pq"

	"github.com/hitoshi/taskboard/internal/model"
)

// PostgresUserRepoはUserRepositoryインターフェースを満たすことを検証
func TestPostgresUserRepo_ImplementsInterface(t *testing.T) {
	var _ UserRepository = (*PostgresUserRepo)(nil)
}

// NewPostgresUserRepoが正しく初期化されることを検証
func TestNewPostgresUserRepo_Initializes(t *testing.T) {
	repo := NewPostgresUserRepo(nil)
	if repo == nil {
		t.Fatal("expected non-nil repo")
	}
}

// Userモデルのフィールドが正しく構築されることを検証
func TestPostgresUserRepo_UserModel_Fields(t *testing.T) {
	user := &model.User{
		ID:           1,
		Email:        "test@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		IsActive:     true,
	}

	if user.ID != 1 {
		t.Errorf("user.ID = %d, want %d", user.ID, 1)
	}
	if user.Email != "test@example.com" {
		t.Errorf("user.Email = %q, want %q", user.Email, "test@example.com")
	}
	if !user.IsActive {
		t.Error("user.IsActive should be true")
	}
}

// 一意制約違反のSQLSTATEがErrDuplicateEmailに対応付けられることを検証
func TestPostgresUserRepo_UniqueViolation_Mapping(t *testing.T) {
	pqErr := &pq.Error{Code: uniqueViolation}

	var target *pq.Error
	if !errors.As(error(pqErr), &target) {
		t.Fatal("expected errors.As to match pq.Error")
	}
	if target.Code != uniqueViolation {
		t.Errorf("target.Code = %q, want %q", target.Code, uniqueViolation)
	}
}

// ErrDuplicateEmailが単一の番兵エラーとして比較可能であることを検証
func TestErrDuplicateEmail_IsSentinel(t *testing.T) {
	wrapped := errors.Join(ErrDuplicateEmail)
	if !errors.Is(wrapped, ErrDuplicateEmail) {
		t.Error("expected errors.Is to match ErrDuplicateEmail")
	}
}
