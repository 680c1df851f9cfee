package model

import "time"

// Todo はタスクを表す。
// Descriptionはリッチテキストエディタ由来のHTMLで、保存前にサニタイズされる。
// StartTime（例: "10:30 AM"）、EndTime、Date（例: "2025-02-21"）は
// フロントエンドの表示形式のまま文字列で保持する。
type Todo struct {
	ID           int64       `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Completed    bool        `json:"completed"`
	Color        string      `json:"color"`
	StartTime    string      `json:"start_time"`
	EndTime      string      `json:"end_time"`
	Date         string      `json:"date"`
	AssignedToID *int64      `json:"assigned_to_id"`
	AssignedTo   *TeamMember `json:"assigned_to,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// DefaultTodoColor は色未指定時のデフォルト値。
const DefaultTodoColor = "blue"

// TodoFilter はタスク一覧のフィルタ条件を表す。
// nilフィールドは条件なしを意味する。
type TodoFilter struct {
	Completed    *bool
	Date         string
	AssignedToID *int64
	Search       string
	Skip         int
	Limit        int
}

// TodoUpdate はタスクの部分更新を表す。
// nilフィールドは「リクエストに含まれなかった」ことを意味し、更新しない。
// 明示的に空文字列やfalseを渡せば、その値で上書き（クリア）できる。
type TodoUpdate struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Completed    *bool   `json:"completed"`
	Color        *string `json:"color"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Date         *string `json:"date"`
	AssignedToID *int64  `json:"assigned_to_id"`
}

// IsEmpty は更新対象フィールドがひとつも指定されていない場合にtrueを返す。
func (u *TodoUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Completed == nil &&
		u.Color == nil && u.StartTime == nil && u.EndTime == nil &&
		u.Date == nil && u.AssignedToID == nil
}

// Apply は指定されたフィールドのみをtodoに適用する。
// 部分更新のマージ規則はTodoUpdateのコメントを参照。
func (u *TodoUpdate) Apply(todo *Todo) {
	if u.Title != nil {
		todo.Title = *u.Title
	}
	if u.Description != nil {
		todo.Description = *u.Description
	}
	if u.Completed != nil {
		todo.Completed = *u.Completed
	}
	if u.Color != nil {
		todo.Color = *u.Color
	}
	if u.StartTime != nil {
		todo.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		todo.EndTime = *u.EndTime
	}
	if u.Date != nil {
		todo.Date = *u.Date
	}
	if u.AssignedToID != nil {
		if *u.AssignedToID == 0 {
			// 0は割り当て解除を意味する
			todo.AssignedToID = nil
		} else {
			todo.AssignedToID = u.AssignedToID
		}
	}
}
