// Package todo はタスク管理のドメインロジックを提供する。
package todo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hitoshi/taskboard/internal/model"
	"github.com/hitoshi/taskboard/internal/repository"
	"github.com/hitoshi/taskboard/internal/security"
)

// Service はタスクの作成・取得・部分更新・削除のビジネスロジックを提供する。
// 割り当て先メンバーの存在確認と説明文HTMLのサニタイズを担う。
type Service struct {
	todoRepo   repository.TodoRepository
	memberRepo repository.TeamMemberRepository
	sanitizer  security.DescriptionSanitizerService
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(
	todoRepo repository.TodoRepository,
	memberRepo repository.TeamMemberRepository,
	sanitizer security.DescriptionSanitizerService,
) *Service {
	return &Service{
		todoRepo:   todoRepo,
		memberRepo: memberRepo,
		sanitizer:  sanitizer,
	}
}

// List はフィルタ条件に合致するタスク一覧を返す。
func (s *Service) List(ctx context.Context, filter model.TodoFilter) ([]*model.Todo, error) {
	todos, err := s.todoRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	return todos, nil
}

// Get は指定IDのタスクを取得する。
func (s *Service) Get(ctx context.Context, id int64) (*model.Todo, error) {
	todo, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	if todo == nil {
		return nil, model.NewTodoNotFoundError(id)
	}
	return todo, nil
}

// Create は新しいタスクを作成する。
// 色未指定時はデフォルト色を補い、説明文はサニタイズして保存する。
// 割り当て先メンバーが指定されている場合は存在を確認する。
func (s *Service) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	todo.Title = strings.TrimSpace(todo.Title)
	if todo.Title == "" {
		return nil, model.NewInvalidRequestError("title is required")
	}
	if todo.Color == "" {
		todo.Color = model.DefaultTodoColor
	}
	todo.Description = s.sanitizer.Sanitize(todo.Description)

	if err := s.resolveAssignee(ctx, todo); err != nil {
		return nil, err
	}

	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	slog.Info("todo created", slog.Int64("todo_id", todo.ID))
	return todo, nil
}

// Update はタスクを部分更新する。
// リクエストに含まれたフィールドのみを上書きし、省略されたフィールドは保持する。
func (s *Service) Update(ctx context.Context, id int64, update *model.TodoUpdate) (*model.Todo, error) {
	todo, err := s.todoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find todo: %w", err)
	}
	if todo == nil {
		return nil, model.NewTodoNotFoundError(id)
	}

	if update.IsEmpty() {
		return todo, nil
	}
	if update.Title != nil {
		trimmed := strings.TrimSpace(*update.Title)
		if trimmed == "" {
			return nil, model.NewInvalidRequestError("title is required")
		}
		update.Title = &trimmed
	}
	if update.Description != nil {
		sanitized := s.sanitizer.Sanitize(*update.Description)
		update.Description = &sanitized
	}

	update.Apply(todo)

	if err := s.resolveAssignee(ctx, todo); err != nil {
		return nil, err
	}

	if err := s.todoRepo.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	slog.Info("todo updated", slog.Int64("todo_id", todo.ID))
	return todo, nil
}

// Delete は指定IDのタスクを削除する。
func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.todoRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	if !deleted {
		return model.NewTodoNotFoundError(id)
	}

	slog.Info("todo deleted", slog.Int64("todo_id", id))
	return nil
}

// resolveAssignee は割り当て先メンバーの存在を確認し、AssignedToを埋める。
// 未割り当ての場合はAssignedToをクリアする。
func (s *Service) resolveAssignee(ctx context.Context, todo *model.Todo) error {
	if todo.AssignedToID == nil {
		todo.AssignedTo = nil
		return nil
	}

	member, err := s.memberRepo.FindByID(ctx, *todo.AssignedToID)
	if err != nil {
		return fmt.Errorf("failed to find team member: %w", err)
	}
	if member == nil {
		return model.NewTeamMemberNotFoundError(*todo.AssignedToID)
	}

	todo.AssignedTo = member
	return nil
}
