package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// Issueが3部構成のJWTを発行することを検証
func TestTokenService_Issue_ReturnsJWT(t *testing.T) {
	ts := NewTokenService("test-signing-key")

	token, err := ts.Issue("user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if parts := strings.Split(token, "."); len(parts) != 3 {
		t.Errorf("token has %d parts, want 3", len(parts))
	}
}

// Issueがsubject未指定でエラーを返すことを検証
func TestTokenService_Issue_EmptySubject(t *testing.T) {
	ts := NewTokenService("test-signing-key")

	if _, err := ts.Issue("", time.Hour); err == nil {
		t.Error("expected error for empty subject")
	}
}

// 発行したトークンの検証でsubjectが返ることを検証
func TestTokenService_IssueVerify_Roundtrip(t *testing.T) {
	ts := NewTokenService("test-signing-key")

	token, err := ts.Issue("user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := ts.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if subject != "user@example.com" {
		t.Errorf("subject = %q, want %q", subject, "user@example.com")
	}
}

// 期限切れトークンがErrTokenExpiredで拒否されることを検証
func TestTokenService_Verify_ExpiredToken(t *testing.T) {
	ts := NewTokenService("test-signing-key")

	token, err := ts.Issue("user@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = ts.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("Verify error = %v, want ErrTokenExpired", err)
	}
}

// 改ざんされたトークンがErrTokenInvalidで拒否されることを検証
func TestTokenService_Verify_TamperedToken(t *testing.T) {
	ts := NewTokenService("test-signing-key")

	token, err := ts.Issue("user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// ペイロード部の1文字を書き換える
	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = ts.Verify(tampered)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify error = %v, want ErrTokenInvalid", err)
	}
}

// 異なる鍵で署名されたトークンが拒否されることを検証
func TestTokenService_Verify_WrongKey(t *testing.T) {
	issuer := NewTokenService("key-one")
	verifier := NewTokenService("key-two")

	token, err := issuer.Issue("user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify error = %v, want ErrTokenInvalid", err)
	}
}

// JWT以外の文字列が拒否されることを検証
func TestTokenService_Verify_Garbage(t *testing.T) {
	ts := NewTokenService("test-signing-key")

	tests := []struct {
		name  string
		token string
	}{
		{name: "空文字列", token: ""},
		{name: "ランダムな文字列", token: "not-a-jwt"},
		{name: "ドット区切りだがJWTでない", token: "aaa.bbb.ccc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ts.Verify(tt.token); !errors.Is(err, ErrTokenInvalid) {
				t.Errorf("Verify(%q) error = %v, want ErrTokenInvalid", tt.token, err)
			}
		})
	}
}

// alg=noneのトークンが拒否されることを検証
func TestTokenService_Verify_NoneAlgorithm(t *testing.T) {
	ts := NewTokenService("test-signing-key")

	// header: {"alg":"none","typ":"JWT"} payload: {"sub":"user@example.com"}
	none := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiJ1c2VyQGV4YW1wbGUuY29tIn0."

	if _, err := ts.Verify(none); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("Verify error = %v, want ErrTokenInvalid", err)
	}
}
