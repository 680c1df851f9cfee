// Package team はチームメンバー管理のドメインロジックを提供する。
package team

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hitoshi/taskboard/internal/model"
	"github.com/hitoshi/taskboard/internal/repository"
)

// Service はチームメンバーの作成・取得・部分更新・削除のビジネスロジックを提供する。
type Service struct {
	memberRepo repository.TeamMemberRepository
}

// NewService はServiceの新しいインスタンスを生成する。
func NewService(memberRepo repository.TeamMemberRepository) *Service {
	return &Service{memberRepo: memberRepo}
}

// List はメンバー一覧を返す。
func (s *Service) List(ctx context.Context, skip, limit int) ([]*model.TeamMember, error) {
	members, err := s.memberRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

// Get は指定IDのメンバーを取得する。
func (s *Service) Get(ctx context.Context, id int64) (*model.TeamMember, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find team member: %w", err)
	}
	if member == nil {
		return nil, model.NewTeamMemberNotFoundError(id)
	}
	return member, nil
}

// Create は新しいメンバーを登録する。
func (s *Service) Create(ctx context.Context, member *model.TeamMember) (*model.TeamMember, error) {
	member.Name = strings.TrimSpace(member.Name)
	if member.Name == "" {
		return nil, model.NewInvalidRequestError("name is required")
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	slog.Info("team member created", slog.Int64("member_id", member.ID))
	return member, nil
}

// Update はメンバーを部分更新する。
// リクエストに含まれたフィールドのみを上書きし、省略されたフィールドは保持する。
func (s *Service) Update(ctx context.Context, id int64, update *model.TeamMemberUpdate) (*model.TeamMember, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find team member: %w", err)
	}
	if member == nil {
		return nil, model.NewTeamMemberNotFoundError(id)
	}

	if update.IsEmpty() {
		return member, nil
	}
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if trimmed == "" {
			return nil, model.NewInvalidRequestError("name is required")
		}
		update.Name = &trimmed
	}

	update.Apply(member)

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	slog.Info("team member updated", slog.Int64("member_id", member.ID))
	return member, nil
}

// Delete は指定IDのメンバーを削除する。
// 割り当て済みタスクの割り当ては外部キー制約により自動で解除される。
func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.memberRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}
	if !deleted {
		return model.NewTeamMemberNotFoundError(id)
	}

	slog.Info("team member deleted", slog.Int64("member_id", id))
	return nil
}
