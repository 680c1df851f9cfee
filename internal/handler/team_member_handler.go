package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hitoshi/taskboard/internal/model"
)

// TeamServiceInterface はチームメンバーハンドラーが必要とするサービスインターフェース。
type TeamServiceInterface interface {
	// List はメンバー一覧を返す。
	List(ctx context.Context, skip, limit int) ([]*model.TeamMember, error)
	// Get は指定IDのメンバーを取得する。
	Get(ctx context.Context, id int64) (*model.TeamMember, error)
	// Create は新しいメンバーを登録する。
	Create(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error)
	// Update はメンバーを部分更新する。
	Update(ctx context.Context, id int64, update *model.TeamMemberUpdate) (*model.TeamMember, error)
	// Delete は指定IDのメンバーを削除する。
	Delete(ctx context.Context, id int64) error
}

// TeamMemberHandler はチームメンバー管理のHTTPハンドラー。
type TeamMemberHandler struct {
	service TeamServiceInterface
}

// NewTeamMemberHandler はTeamMemberHandlerを生成する。
func NewTeamMemberHandler(service TeamServiceInterface) *TeamMemberHandler {
	return &TeamMemberHandler{service: service}
}

// createTeamMemberRequest はメンバー登録リクエストのボディ。
type createTeamMemberRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// ListTeamMembers はメンバー一覧を取得する。
// クエリパラメータ: skip, limit
// GET /team-members
func (h *TeamMemberHandler) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	skip, limit := 0, 0
	if v := r.URL.Query().Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("skipは整数で指定してください"))
			return
		}
		skip = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("limitは整数で指定してください"))
			return
		}
		limit = n
	}

	members, err := h.service.List(r.Context(), skip, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, members)
}

// GetTeamMember はメンバー詳細を取得する。
// GET /team-members/:id
func (h *TeamMemberHandler) GetTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	member, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, member)
}

// CreateTeamMember はメンバー登録を処理する。
// POST /team-members
func (h *TeamMemberHandler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	var req createTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("リクエストボディの解析に失敗しました"))
		return
	}

	created, err := h.service.Create(r.Context(), &model.TeamMember{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, created)
}

// UpdateTeamMember はメンバーの部分更新を処理する。
// ボディに含まれたフィールドのみを更新する。
// PUT /team-members/:id
func (h *TeamMemberHandler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var update model.TeamMemberUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("リクエストボディの解析に失敗しました"))
		return
	}

	updated, err := h.service.Update(r.Context(), id, &update)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, updated)
}

// DeleteTeamMember はメンバー削除を処理する。
// DELETE /team-members/:id
func (h *TeamMemberHandler) DeleteTeamMember(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, detailResponse{Detail: "Team member deleted successfully"})
}
