package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hitoshi/taskboard/internal/model"
)

// TodoServiceInterface はタスクハンドラーが必要とするサービスインターフェース。
type TodoServiceInterface interface {
	// List はフィルタ条件に合致するタスク一覧を返す。
	List(ctx context.Context, filter model.TodoFilter) ([]*model.Todo, error)
	// Get は指定IDのタスクを取得する。
	Get(ctx context.Context, id int64) (*model.Todo, error)
	// Create は新しいタスクを作成する。
	Create(ctx context.Context, todo *model.Todo) (*model.Todo, error)
	// Update はタスクを部分更新する。
	Update(ctx context.Context, id int64, update *model.TodoUpdate) (*model.Todo, error)
	// Delete は指定IDのタスクを削除する。
	Delete(ctx context.Context, id int64) error
}

// TodoHandler はタスク管理のHTTPハンドラー。
type TodoHandler struct {
	service TodoServiceInterface
}

// NewTodoHandler はTodoHandlerを生成する。
func NewTodoHandler(service TodoServiceInterface) *TodoHandler {
	return &TodoHandler{service: service}
}

// createTodoRequest はタスク作成リクエストのボディ。
type createTodoRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Completed    bool   `json:"completed"`
	Color        string `json:"color"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Date         string `json:"date"`
	AssignedToID *int64 `json:"assigned_to_id"`
}

// ListTodos はタスク一覧を取得する。
// クエリパラメータ: completed, date, assigned_to_id, search, skip, limit
// GET /todos
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTodoFilter(r)
	if err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError(err.Error()))
		return
	}

	todos, err := h.service.List(r.Context(), filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, todos)
}

// GetTodo はタスク詳細を取得する。
// GET /todos/:id
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	todo, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, todo)
}

// CreateTodo はタスク作成を処理する。
// POST /todos
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("リクエストボディの解析に失敗しました"))
		return
	}

	todo := &model.Todo{
		Title:        req.Title,
		Description:  req.Description,
		Completed:    req.Completed,
		Color:        req.Color,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Date:         req.Date,
		AssignedToID: req.AssignedToID,
	}

	created, err := h.service.Create(r.Context(), todo)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusCreated, created)
}

// UpdateTodo はタスクの部分更新を処理する。
// ボディに含まれたフィールドのみを更新する。
// PUT /todos/:id
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var update model.TodoUpdate
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

// DeleteTodo はタスク削除を処理する。
// DELETE /todos/:id
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, detailResponse{Detail: "Todo deleted successfully"})
}

// parseIDParam はURLパスのidパラメータを解析する。
// 解析に失敗した場合はエラーレスポンスを書き込みfalseを返す。
func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidRequestError("IDは整数で指定してください"))
		return 0, false
	}
	return id, true
}

// parseTodoFilter はクエリパラメータからタスク一覧のフィルタ条件を組み立てる。
func parseTodoFilter(r *http.Request) (model.TodoFilter, error) {
	filter := model.TodoFilter{
		Date:   r.URL.Query().Get("date"),
		Search: r.URL.Query().Get("search"),
	}

	if v := r.URL.Query().Get("completed"); v != "" {
		completed, err := strconv.ParseBool(v)
		if err != nil {
			return filter, fmt.Errorf("completedはtrue/falseで指定してください")
		}
		filter.Completed = &completed
	}

	if v := r.URL.Query().Get("assigned_to_id"); v != "" {
		assignedToID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("assigned_to_idは整数で指定してください")
		}
		filter.AssignedToID = &assignedToID
	}

	if v := r.URL.Query().Get("skip"); v != "" {
		skip, err := strconv.Atoi(v)
		if err != nil {
			return filter, fmt.Errorf("skipは整数で指定してください")
		}
		filter.Skip = skip
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return filter, fmt.Errorf("limitは整数で指定してください")
		}
		filter.Limit = limit
	}

	return filter, nil
}
