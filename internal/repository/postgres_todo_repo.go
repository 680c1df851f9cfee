package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/hitoshi/taskboard/internal/model"
)

// defaultTodoLimit はタスク一覧のlimit未指定・不正時に適用する件数。
const defaultTodoLimit = 100

// todoSelectColumns はタスク取得時の共通SELECT句。
// 割り当て先メンバーをLEFT JOINで同時に取得する。
const todoSelectColumns = `
	SELECT t.id, t.title, t.description, t.completed, t.color,
	       t.start_time, t.end_time, t.date, t.assigned_to_id,
	       t.created_at, t.updated_at,
	       m.id, m.name, m.avatar, m.created_at
	FROM todos t
	LEFT JOIN team_members m ON m.id = t.assigned_to_id`

// PostgresTodoRepo はPostgreSQLを使用したタスクリポジトリ。
type PostgresTodoRepo struct {
	db *sql.DB
}

// NewPostgresTodoRepo はPostgresTodoRepoを生成する。
func NewPostgresTodoRepo(db *sql.DB) *PostgresTodoRepo {
	return &PostgresTodoRepo{db: db}
}

// FindByID は指定IDのタスクを割り当て先メンバー付きで取得する。見つからない場合はnilを返す。
func (r *PostgresTodoRepo) FindByID(ctx context.Context, id int64) (*model.Todo, error) {
	row := r.db.QueryRowContext(ctx, todoSelectColumns+` WHERE t.id = $1`, id)

	todo, err := scanTodo(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find todo by ID: %w", err)
	}

	return todo, nil
}

// List はフィルタ条件に合致するタスク一覧を返す。
// 条件はAND結合され、nil/空のフィールドは無視される。結果はID昇順。
func (r *PostgresTodoRepo) List(ctx context.Context, filter model.TodoFilter) ([]*model.Todo, error) {
	var conds []string
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Completed != nil {
		conds = append(conds, "t.completed = "+arg(*filter.Completed))
	}
	if filter.Date != "" {
		conds = append(conds, "t.date = "+arg(filter.Date))
	}
	if filter.AssignedToID != nil {
		conds = append(conds, "t.assigned_to_id = "+arg(*filter.AssignedToID))
	}
	if filter.Search != "" {
		conds = append(conds, "t.title LIKE "+arg("%"+filter.Search+"%"))
	}

	query := todoSelectColumns
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTodoLimit
	}
	skip := filter.Skip
	if skip < 0 {
		skip = 0
	}
	query += fmt.Sprintf(" ORDER BY t.id OFFSET %s LIMIT %s", arg(skip), arg(limit))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	defer rows.Close()

	todos := []*model.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate todos: %w", err)
	}

	return todos, nil
}

// Create はタスクを作成し、ID・作成日時・更新日時を採番して埋める。
func (r *PostgresTodoRepo) Create(ctx context.Context, todo *model.Todo) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO todos (title, description, completed, color, start_time, end_time, date, assigned_to_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		todo.Title, todo.Description, todo.Completed, todo.Color,
		todo.StartTime, todo.EndTime, todo.Date, todo.AssignedToID,
	).Scan(&todo.ID, &todo.CreatedAt, &todo.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert todo: %w", err)
	}
	return nil
}

// Update はタスク全体を上書き保存し、更新日時を進める。
func (r *PostgresTodoRepo) Update(ctx context.Context, todo *model.Todo) error {
	err := r.db.QueryRowContext(ctx,
		`UPDATE todos
		 SET title = $1, description = $2, completed = $3, color = $4,
		     start_time = $5, end_time = $6, date = $7, assigned_to_id = $8,
		     updated_at = now()
		 WHERE id = $9
		 RETURNING updated_at`,
		todo.Title, todo.Description, todo.Completed, todo.Color,
		todo.StartTime, todo.EndTime, todo.Date, todo.AssignedToID,
		todo.ID,
	).Scan(&todo.UpdatedAt)

	if err == sql.ErrNoRows {
		return fmt.Errorf("todo not found: %d", todo.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}
	return nil
}

// Delete は指定IDのタスクを削除する。削除できた場合はtrueを返す。
func (r *PostgresTodoRepo) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM todos WHERE id = $1`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete todo: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected > 0, nil
}

// rowScanner はsql.Rowとsql.Rowsの共通スキャンインターフェース。
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTodo はJOIN済みの1行をTodoに変換する。
// 割り当て先メンバーが存在しない場合はAssignedToをnilのままにする。
func scanTodo(row rowScanner) (*model.Todo, error) {
	todo := &model.Todo{}
	var (
		memberID        sql.NullInt64
		memberName      sql.NullString
		memberAvatar    sql.NullString
		memberCreatedAt sql.NullTime
	)

	err := row.Scan(
		&todo.ID, &todo.Title, &todo.Description, &todo.Completed, &todo.Color,
		&todo.StartTime, &todo.EndTime, &todo.Date, &todo.AssignedToID,
		&todo.CreatedAt, &todo.UpdatedAt,
		&memberID, &memberName, &memberAvatar, &memberCreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if memberID.Valid {
		todo.AssignedTo = &model.TeamMember{
			ID:        memberID.Int64,
			Name:      memberName.String,
			Avatar:    memberAvatar.String,
			CreatedAt: memberCreatedAt.Time,
		}
	}

	return todo, nil
}

// compile-time interface check
var _ TodoRepository = (*PostgresTodoRepo)(nil)
