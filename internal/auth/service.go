package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hitoshi/taskboard/internal/metrics"
	"github.com/hitoshi/taskboard/internal/model"
	"github.com/hitoshi/taskboard/internal/repository"
)

// MinPasswordLength はパスワードの最小文字数。
const MinPasswordLength = 8

// MaxPasswordLength はパスワードの最大バイト数。bcryptの入力上限。
const MaxPasswordLength = 72

// ServiceConfig は認証サービスの設定。
type ServiceConfig struct {
	AccessTokenTTL time.Duration // アクセストークン有効期間
	BcryptCost     int           // bcryptコスト。0はライブラリのデフォルト
}

// Service は認証に関するビジネスロジックを提供する。
type Service struct {
	userRepo repository.UserRepository
	tokens   *TokenService
	metrics  metrics.MetricsCollector
	config   ServiceConfig
}

// NewService はServiceを生成する。
func NewService(
	userRepo repository.UserRepository,
	tokens *TokenService,
	collector metrics.MetricsCollector,
	config ServiceConfig,
) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		metrics:  collector,
		config:   config,
	}
}

// Register は新規ユーザーを登録する。
// メールアドレスの重複は保存時の一意制約で検出するため、
// 同時登録の競合でも片方だけが成功する。
func (s *Service) Register(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		return nil, model.NewInvalidRequestError(err.Error())
	}
	if err := validatePassword(password); err != nil {
		return nil, model.NewInvalidRequestError(err.Error())
	}

	hash, err := HashPasswordCost(password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, model.NewEmailTakenError()
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.RecordRegistration()
	slog.Info("new user registered", slog.Int64("user_id", user.ID))

	return user, nil
}

// Login はメールアドレスとパスワードを検証し、アクセストークンを発行する。
// 未登録のメールアドレスとパスワード不一致は同一のエラーを返し、
// レスポンスから登録有無を推測できないようにする。
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil || !VerifyPassword(password, user.PasswordHash) {
		s.metrics.RecordLoginFailure()
		slog.Info("login failed")
		return "", model.NewIncorrectCredentialsError()
	}

	token, err := s.tokens.Issue(user.Email, s.config.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.RecordLoginSuccess()
	slog.Info("user logged in", slog.Int64("user_id", user.ID))

	return token, nil
}

// ResolveUser はアクセストークンを検証し、対応するユーザーを解決する。
// 失効・改ざん・サブジェクト不明のいずれであっても同一のエラーを返す。
func (s *Service) ResolveUser(ctx context.Context, tokenString string) (*model.User, error) {
	subject, err := s.tokens.Verify(tokenString)
	if err != nil {
		s.metrics.RecordTokenRejected()
		if errors.Is(err, ErrTokenExpired) {
			slog.Debug("token rejected", slog.String("reason", "expired"))
		} else {
			slog.Debug("token rejected", slog.String("reason", "invalid"))
		}
		return nil, model.NewCouldNotValidateError()
	}

	user, err := s.userRepo.FindByEmail(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		s.metrics.RecordTokenRejected()
		slog.Debug("token rejected", slog.String("reason", "unknown subject"))
		return nil, model.NewCouldNotValidateError()
	}

	return user, nil
}

// ChangePassword は現在のパスワードを検証した上で新しいパスワードに更新する。
// 既発行のトークンは引き続き有効のまま残る。
func (s *Service) ChangePassword(ctx context.Context, user *model.User, currentPassword, newPassword string) error {
	if !VerifyPassword(currentPassword, user.PasswordHash) {
		return model.NewWrongPasswordError()
	}
	if err := validatePassword(newPassword); err != nil {
		return model.NewInvalidRequestError(err.Error())
	}

	hash, err := HashPasswordCost(newPassword, s.config.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	slog.Info("password changed", slog.Int64("user_id", user.ID))
	return nil
}

// validateEmail はメールアドレスの形式を簡易検証する。
func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// validatePassword はパスワードの最小・最大要件を検証する。
// 上限はbcryptが受け付ける72バイトに合わせる。
func validatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("password must be at most %d bytes", MaxPasswordLength)
	}
	return nil
}
