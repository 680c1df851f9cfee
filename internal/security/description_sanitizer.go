// Package security はアプリケーションのセキュリティ機能を提供する。
//
// DescriptionSanitizerService はタスク説明文のHTMLをサニタイズし、
// XSS攻撃などのセキュリティリスクからユーザーを保護する。
// 説明文はリッチテキストエディタが生成するHTMLであり、
// bluemondayライブラリを使用した許可リストベースのポリシーで
// 安全なタグと属性のみを通過させる。
package security

import (
	"github.com/microcosm-cc/bluemonday"
)

// DescriptionSanitizerService はHTML説明文のサニタイズ機能のインターフェースを定義する。
// タスクの作成・更新時、保存前に使用される。
type DescriptionSanitizerService interface {
	// Sanitize はHTML説明文をサニタイズして安全なHTMLを返す。
	// エディタが生成する書式タグ（p, br, h1〜h3, ul, ol, li, blockquote,
	// pre, code, strong, em, u, s）のみを通過させ、
	// script, iframe, styleタグおよびon*イベント属性を除去する。
	// 空文字列の入力には空文字列を返す。
	// 同一入力に対して常に同一出力を返す（冪等）。
	Sanitize(rawHTML string) string
}

// descriptionSanitizer はDescriptionSanitizerServiceの実装。
// bluemondayのポリシーを保持し、スレッドセーフにサニタイズ処理を行う。
type descriptionSanitizer struct {
	policy *bluemonday.Policy
}

// NewDescriptionSanitizer はDescriptionSanitizerServiceの新しいインスタンスを生成する。
// 初期化時にbluemondayのカスタムポリシーを構築する。
// ポリシーの内容:
//   - 許可タグ: p, br, h1, h2, h3, ul, ol, li, blockquote, pre, code, strong, em, u, s
//   - 禁止タグ: script, iframe, style および全てのon*イベント属性
//   - リンクや画像は説明文では扱わないため許可しない
func NewDescriptionSanitizer() *descriptionSanitizer {
	p := bluemonday.NewPolicy()

	// エディタの書式メニューに対応するタグのみを許可する。
	// script, iframe, style等は許可リストに含めないことで自動的に除去される。
	// on*イベント属性はbluemondayのデフォルトで許可されないため除去される。
	p.AllowElements(
		"p", "br",
		"h1", "h2", "h3",
		"ul", "ol", "li",
		"blockquote", "pre", "code",
		"strong", "em", "u", "s",
	)

	return &descriptionSanitizer{
		policy: p,
	}
}

// Sanitize はHTML説明文をサニタイズして安全なHTMLを返す。
func (s *descriptionSanitizer) Sanitize(rawHTML string) string {
	return s.policy.Sanitize(rawHTML)
}
