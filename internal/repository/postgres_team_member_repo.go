package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hitoshi/taskboard/internal/model"
)

// defaultTeamMemberLimit はメンバー一覧のlimit未指定・不正時に適用する件数。
const defaultTeamMemberLimit = 100

// PostgresTeamMemberRepo はPostgreSQLを使用したチームメンバーリポジトリ。
type PostgresTeamMemberRepo struct {
	db *sql.DB
}

// NewPostgresTeamMemberRepo はPostgresTeamMemberRepoを生成する。
func NewPostgresTeamMemberRepo(db *sql.DB) *PostgresTeamMemberRepo {
	return &PostgresTeamMemberRepo{db: db}
}

// FindByID は指定IDのメンバーを取得する。見つからない場合はnilを返す。
func (r *PostgresTeamMemberRepo) FindByID(ctx context.Context, id int64) (*model.TeamMember, error) {
	member := &model.TeamMember{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, avatar, created_at FROM team_members WHERE id = $1`,
		id,
	).Scan(&member.ID, &member.Name, &member.Avatar, &member.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find team member by ID: %w", err)
	}

	return member, nil
}

// List はメンバー一覧をID昇順で返す。
func (r *PostgresTeamMemberRepo) List(ctx context.Context, skip, limit int) ([]*model.TeamMember, error) {
	if limit <= 0 {
		limit = defaultTeamMemberLimit
	}
	if skip < 0 {
		skip = 0
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, avatar, created_at FROM team_members ORDER BY id OFFSET $1 LIMIT $2`,
		skip, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	members := []*model.TeamMember{}
	for rows.Next() {
		member := &model.TeamMember{}
		if err := rows.Scan(&member.ID, &member.Name, &member.Avatar, &member.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate team members: %w", err)
	}

	return members, nil
}

// Create はメンバーを作成し、IDと作成日時を採番して埋める。
func (r *PostgresTeamMemberRepo) Create(ctx context.Context, member *model.TeamMember) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO team_members (name, avatar)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		member.Name, member.Avatar,
	).Scan(&member.ID, &member.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert team member: %w", err)
	}
	return nil
}

// Update はメンバー全体を上書き保存する。
func (r *PostgresTeamMemberRepo) Update(ctx context.Context, member *model.TeamMember) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE team_members SET name = $1, avatar = $2 WHERE id = $3`,
		member.Name, member.Avatar, member.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("team member not found: %d", member.ID)
	}
	return nil
}

// Delete は指定IDのメンバーを削除する。削除できた場合はtrueを返す。
// 割り当て済みタスクのassigned_to_idはON DELETE SET NULLで解除される。
func (r *PostgresTeamMemberRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM team_members WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete team member: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// compile-time interface check
var _ TeamMemberRepository = (*PostgresTeamMemberRepo)(nil)
