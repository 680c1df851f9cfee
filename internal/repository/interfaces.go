// Package repository はデータ永続化のインターフェースを定義する。
package repository

import (
	"context"
	"errors"

	"github.com/hitoshi/taskboard/internal/model"
)

// ErrDuplicateEmail は登録済みメールアドレスでの重複登録を表す。
// usersテーブルのUNIQUE制約違反から検出される。
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository はクレデンシャル（登録アカウント）の永続化インターフェース。
type UserRepository interface {
	// FindByEmail は指定メールアドレスのユーザーを取得する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// Create はユーザーを作成しIDを採番して返す。
	// メールアドレスが登録済みの場合はErrDuplicateEmailを返す。
	// 同時登録の競合はDBのUNIQUE制約で解決され、後勝ちの上書きは発生しない。
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)

	// UpdatePasswordHash は指定ユーザーのパスワードハッシュを上書きする。
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
}

// TodoRepository はタスクデータの永続化インターフェース。
type TodoRepository interface {
	// FindByID は指定IDのタスクを割り当て先メンバー付きで取得する。
	// 見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.Todo, error)

	// List はフィルタ条件に合致するタスク一覧を割り当て先メンバー付きで返す。
	List(ctx context.Context, filter model.TodoFilter) ([]*model.Todo, error)

	// Create はタスクを作成し、ID・作成日時・更新日時を採番して埋める。
	Create(ctx context.Context, todo *model.Todo) error

	// Update はタスク全体を上書き保存し、更新日時を進める。
	// 部分更新のマージは呼び出し側（サービス層）で行う。
	Update(ctx context.Context, todo *model.Todo) error

	// Delete は指定IDのタスクを削除する。削除できた場合はtrueを返す。
	Delete(ctx context.Context, id int64) (bool, error)
}

// TeamMemberRepository はチームメンバーデータの永続化インターフェース。
type TeamMemberRepository interface {
	// FindByID は指定IDのメンバーを取得する。見つからない場合はnilを返す。
	FindByID(ctx context.Context, id int64) (*model.TeamMember, error)

	// List はメンバー一覧をID昇順で返す。
	List(ctx context.Context, skip, limit int) ([]*model.TeamMember, error)

	// Create はメンバーを作成し、IDと作成日時を採番して埋める。
	Create(ctx context.Context, member *model.TeamMember) error

	// Update はメンバー全体を上書き保存する。
	Update(ctx context.Context, member *model.TeamMember) error

	// Delete は指定IDのメンバーを削除する。削除できた場合はtrueを返す。
	Delete(ctx context.Context, id int64) (bool, error)
}
