package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultTag は何も抽出できなかった場合に使う最後の砦。
const DefaultTag = "#content"

var hashtagPattern = regexp.MustCompile(`#[A-Za-z0-9_]+`)

/**
 * NormalizeTags は生成結果由来の雑多なタグ入力を整ったハッシュタグ列へ揃える。
 * - 各入力をカンマ・空白で分割する
 * - トークン内に #word が埋まっていれば個別のタグとして取り出し、
 *   残った語も # を付けてタグにする
 * - # が無いトークンは先頭に # を付ける（# 単体は捨てる）
 * - 大文字小文字を区別したまま、初出順で重複を除く
 * - 空になったら ["#content"] を返す
 * 整形済みの入力に対しては冪等。
 */
func NormalizeTags(inputs []string) []string {
	var tokens []string
	for _, in := range inputs {
		tokens = append(tokens, splitTagInput(in)...)
	}

	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	add := func(raw string) {
		tag := sanitizeTag(raw)
		if tag == "" || tag == "#" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	for _, token := range tokens {
		matches := hashtagPattern.FindAllString(token, -1)
		if len(matches) == 0 {
			if !strings.HasPrefix(token, "#") {
				token = "#" + token
			}
			add(token)
			continue
		}
		for _, m := range matches {
			add(m)
		}
		// 取り出した後に残った語もタグ扱いにする
		leftover := hashtagPattern.ReplaceAllString(token, " ")
		for _, word := range strings.Fields(leftover) {
			word = strings.Trim(word, "#")
			if word != "" {
				add("#" + word)
			}
		}
	}

	if len(out) == 0 {
		return []string{DefaultTag}
	}
	return out
}

func splitTagInput(in string) []string {
	return strings.FieldsFunc(in, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// タグは # + 英数字・アンダースコアのみ残す。
func sanitizeTag(tag string) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, r := range strings.TrimPrefix(tag, "#") {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() <= 1 {
		return ""
	}
	return b.String()
}
