package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hitoshi/taskboard/internal/model"
)

// --- モック定義 ---

type mockTeamService struct {
	listFn   func(ctx context.Context, skip, limit int) ([]*model.TeamMember, error)
	getFn    func(ctx context.Context, id int64) (*model.TeamMember, error)
	createFn func(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error)
	updateFn func(ctx context.Context, id int64, update *model.TeamMemberUpdate) (*model.TeamMember, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockTeamService) List(ctx context.Context, skip, limit int) ([]*model.TeamMember, error) {
	if m.listFn != nil {
		return m.listFn(ctx, skip, limit)
	}
	return []*model.TeamMember{}, nil
}

func (m *mockTeamService) Get(ctx context.Context, id int64) (*model.TeamMember, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, model.NewTeamMemberNotFoundError(id)
}

func (m *mockTeamService) Create(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error) {
	if m.createFn != nil {
		return m.createFn(ctx, member)
	}
	member.ID = 1
	return member, nil
}

func (m *mockTeamService) Update(ctx context.Context, id int64, update *model.TeamMemberUpdate) (*model.TeamMember, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return nil, model.NewTeamMemberNotFoundError(id)
}

func (m *mockTeamService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// --- ListTeamMembers ---

// skip/limitパラメータがサービスに渡ることを検証
func TestTeamMemberHandler_ListTeamMembers_PassesPagination(t *testing.T) {
	var capturedSkip, capturedLimit int
	svc := &mockTeamService{
		listFn: func(ctx context.Context, skip, limit int) ([]*model.TeamMember, error) {
			capturedSkip, capturedLimit = skip, limit
			return []*model.TeamMember{}, nil
		},
	}
	h := NewTeamMemberHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/team-members?skip=5&limit=10", nil)
	w := httptest.NewRecorder()

	h.ListTeamMembers(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
	if capturedSkip != 5 || capturedLimit != 10 {
		t.Errorf("skip/limit = %d/%d, want 5/10", capturedSkip, capturedLimit)
	}
}

// 不正なskipパラメータで400が返ることを検証
func TestTeamMemberHandler_ListTeamMembers_InvalidSkip(t *testing.T) {
	h := NewTeamMemberHandler(&mockTeamService{})

	req := httptest.NewRequest(http.MethodGet, "/team-members?skip=five", nil)
	w := httptest.NewRecorder()

	h.ListTeamMembers(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusBadRequest)
	}
}

// --- GetTeamMember ---

// メンバー詳細が返ることを検証
func TestTeamMemberHandler_GetTeamMember_Success(t *testing.T) {
	svc := &mockTeamService{
		getFn: func(ctx context.Context, id int64) (*model.TeamMember, error) {
			return &model.TeamMember{ID: id, Name: "田中"}, nil
		},
	}
	h := NewTeamMemberHandler(svc)

	req := requestWithIDParam(http.MethodGet, "/team-members/4", "4", nil)
	w := httptest.NewRecorder()

	h.GetTeamMember(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}

	var resp model.TeamMember
	if err := json.NewDecoder(w.Result().Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.ID != 4 || resp.Name != "田中" {
		t.Errorf("resp = %+v, want ID=4 Name=田中", resp)
	}
}

// 存在しないメンバーで404が返ることを検証
func TestTeamMemberHandler_GetTeamMember_NotFound(t *testing.T) {
	h := NewTeamMemberHandler(&mockTeamService{})

	req := requestWithIDParam(http.MethodGet, "/team-members/42", "42", nil)
	w := httptest.NewRecorder()

	h.GetTeamMember(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusNotFound)
	}

	var resp apiErrorResponse
	if err := json.NewDecoder(w.Result().Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Code != model.ErrCodeTeamMemberNotFound {
		t.Errorf("resp.Code = %q, want %q", resp.Code, model.ErrCodeTeamMemberNotFound)
	}
}

// --- CreateTeamMember ---

// メンバー登録で201が返ることを検証
func TestTeamMemberHandler_CreateTeamMember_Returns201(t *testing.T) {
	var captured *model.TeamMember
	svc := &mockTeamService{
		createFn: func(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error) {
			member.ID = 2
			captured = member
			return member, nil
		},
	}
	h := NewTeamMemberHandler(svc)

	body := strings.NewReader(`{"name":"田中","avatar":"https://example.com/tanaka.png"}`)
	req := httptest.NewRequest(http.MethodPost, "/team-members", body)
	w := httptest.NewRecorder()

	h.CreateTeamMember(w, req)

	if w.Result().StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Result().StatusCode, http.StatusCreated)
	}
	if captured.Name != "田中" {
		t.Errorf("captured.Name = %q, want %q", captured.Name, "田中")
	}
	if captured.Avatar != "https://example.com/tanaka.png" {
		t.Errorf("captured.Avatar = %q", captured.Avatar)
	}
}

// 名前なしでサービスのバリデーションエラーが400になることを検証
func TestTeamMemberHandler_CreateTeamMember_MissingName(t *testing.T) {
	svc := &mockTeamService{
		createFn: func(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error) {
			return nil, model.NewInvalidRequestError("名前は必須です")
		},
	}
	h := NewTeamMemberHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/team-members", strings.NewReader(`{"avatar":"x"}`))
	w := httptest.NewRecorder()

	h.CreateTeamMember(w, req)

	if w.Result().StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusBadRequest)
	}
}

// --- UpdateTeamMember ---

// ボディに含まれたフィールドのみが更新対象になることを検証
func TestTeamMemberHandler_UpdateTeamMember_PartialBody(t *testing.T) {
	var captured *model.TeamMemberUpdate
	svc := &mockTeamService{
		updateFn: func(ctx context.Context, id int64, update *model.TeamMemberUpdate) (*model.TeamMember, error) {
			captured = update
			return &model.TeamMember{ID: id, Name: "佐藤"}, nil
		},
	}
	h := NewTeamMemberHandler(svc)

	req := requestWithIDParam(http.MethodPut, "/team-members/1", "1", strings.NewReader(`{"name":"佐藤"}`))
	w := httptest.NewRecorder()

	h.UpdateTeamMember(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
	if captured.Name == nil || *captured.Name != "佐藤" {
		t.Error("update.Name should be 佐藤")
	}
	if captured.Avatar != nil {
		t.Error("update.Avatar should be nil when omitted")
	}
}

// --- DeleteTeamMember ---

// メンバー削除で200が返ることを検証
func TestTeamMemberHandler_DeleteTeamMember_Success(t *testing.T) {
	var deletedID int64
	svc := &mockTeamService{
		deleteFn: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	h := NewTeamMemberHandler(svc)

	req := requestWithIDParam(http.MethodDelete, "/team-members/6", "6", nil)
	w := httptest.NewRecorder()

	h.DeleteTeamMember(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusOK)
	}
	if deletedID != 6 {
		t.Errorf("deletedID = %d, want 6", deletedID)
	}
}

// 存在しないメンバーの削除で404が返ることを検証
func TestTeamMemberHandler_DeleteTeamMember_NotFound(t *testing.T) {
	svc := &mockTeamService{
		deleteFn: func(ctx context.Context, id int64) error {
			return model.NewTeamMemberNotFoundError(id)
		},
	}
	h := NewTeamMemberHandler(svc)

	req := requestWithIDParam(http.MethodDelete, "/team-members/42", "42", nil)
	w := httptest.NewRecorder()

	h.DeleteTeamMember(w, req)

	if w.Result().StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Result().StatusCode, http.StatusNotFound)
	}
}
