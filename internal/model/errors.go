// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: auth, validation, task, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeNotAuthenticated     = "NOT_AUTHENTICATED"
	ErrCodeCouldNotValidate     = "COULD_NOT_VALIDATE_CREDENTIALS"
	ErrCodeIncorrectCredentials = "INCORRECT_CREDENTIALS"
	ErrCodeEmailTaken           = "EMAIL_TAKEN"
	ErrCodeWrongPassword        = "WRONG_PASSWORD"
	ErrCodeInvalidRequest       = "INVALID_REQUEST"
	ErrCodeTodoNotFound         = "TODO_NOT_FOUND"
	ErrCodeTeamMemberNotFound   = "TEAM_MEMBER_NOT_FOUND"
)

// NewNotAuthenticatedError はトークン未提示エラーを生成する。
func NewNotAuthenticatedError() *APIError {
	return &APIError{
		Code:     ErrCodeNotAuthenticated,
		Message:  "Not authenticated",
		Category: "auth",
		Action:   "Authorization: Bearer ヘッダーにアクセストークンを指定してください。",
	}
}

// NewCouldNotValidateError は認証失敗の統一エラーを生成する。
// 失効・改ざん・不明なサブジェクトのいずれであっても同一のレスポンスを返し、
// 失敗理由の列挙攻撃を防ぐ。
func NewCouldNotValidateError() *APIError {
	return &APIError{
		Code:     ErrCodeCouldNotValidate,
		Message:  "Could not validate credentials",
		Category: "auth",
		Action:   "再度ログインしてアクセストークンを取得し直してください。",
	}
}

// NewIncorrectCredentialsError はログイン失敗の統一エラーを生成する。
// メールアドレスの存在有無を区別しない。
func NewIncorrectCredentialsError() *APIError {
	return &APIError{
		Code:     ErrCodeIncorrectCredentials,
		Message:  "Incorrect username or password",
		Category: "auth",
		Action:   "メールアドレスとパスワードを確認してください。",
	}
}

// NewEmailTakenError はメールアドレス重複エラーを生成する。
func NewEmailTakenError() *APIError {
	return &APIError{
		Code:     ErrCodeEmailTaken,
		Message:  "Email already registered",
		Category: "validation",
		Action:   "別のメールアドレスで登録するか、ログインしてください。",
	}
}

// NewWrongPasswordError はパスワード変更時の現パスワード不一致エラーを生成する。
func NewWrongPasswordError() *APIError {
	return &APIError{
		Code:     ErrCodeWrongPassword,
		Message:  "Incorrect password",
		Category: "validation",
		Action:   "現在のパスワードを確認してください。",
	}
}

// NewInvalidRequestError はリクエスト形式エラーを生成する。
func NewInvalidRequestError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  fmt.Sprintf("無効なリクエストです: %s", reason),
		Category: "validation",
		Action:   "リクエスト形式を確認してください。",
	}
}

// NewTodoNotFoundError はタスク未検出エラーを生成する。
func NewTodoNotFoundError(todoID int64) *APIError {
	return &APIError{
		Code:     ErrCodeTodoNotFound,
		Message:  fmt.Sprintf("指定されたタスクが見つかりません: %d", todoID),
		Category: "task",
		Action:   "タスクIDを確認してください。",
	}
}

// NewTeamMemberNotFoundError はチームメンバー未検出エラーを生成する。
func NewTeamMemberNotFoundError(memberID int64) *APIError {
	return &APIError{
		Code:     ErrCodeTeamMemberNotFound,
		Message:  fmt.Sprintf("指定されたチームメンバーが見つかりません: %d", memberID),
		Category: "task",
		Action:   "メンバーIDを確認してください。",
	}
}
