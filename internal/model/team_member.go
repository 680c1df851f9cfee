package model

import "time"

// TeamMember はタスクを割り当てられるチームメンバーを表す。
type TeamMember struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// TeamMemberUpdate はチームメンバーの部分更新を表す。
// タスクと同じマージ規則（nil=未指定=変更なし）を適用する。
type TeamMemberUpdate struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

// IsEmpty は更新対象フィールドがひとつも指定されていない場合にtrueを返す。
func (u *TeamMemberUpdate) IsEmpty() bool {
	return u.Name == nil && u.Avatar == nil
}

// Apply は指定されたフィールドのみをmemberに適用する。
func (u *TeamMemberUpdate) Apply(member *TeamMember) {
	if u.Name != nil {
		member.Name = *u.Name
	}
	if u.Avatar != nil {
		member.Avatar = *u.Avatar
	}
}
