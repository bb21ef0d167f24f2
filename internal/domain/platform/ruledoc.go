package platform

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

var (
	// ErrDocTableNotFound はルール表が文書内に見つからない場合に返される。
	ErrDocTableNotFound = errors.New("ruledoc: requirements table not found")
)

/**
 * DocEntry はルール文書の表 1 行分。
 * MaxLength / OptimalLength が 0 の場合は記載なし（"-"）を表す。
 */
type DocEntry struct {
	Platform      string
	Field         string
	MaxLength     int
	OptimalLength int
	Source        string
}

// ルール表のヘッダー。この並びと一致する最初の表だけを読む。
var docTableHeader = []string{"Platform", "Field", "Max Length", "Optimal Length", "Source"}

/**
 * ParseRuleDoc は docs/platform_text_rules.md 形式の Markdown から
 * プラットフォーム別の上限値表を読み取る。
 * レジストリとの整合テストが一次情報として参照する。
 */
func ParseRuleDoc(source []byte) ([]DocEntry, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(source))

	var entries []DocEntry
	found := false

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || found {
			return ast.WalkContinue, nil
		}
		table, ok := n.(*east.Table)
		if !ok {
			return ast.WalkContinue, nil
		}
		rows, ok := readTable(table, source)
		if !ok {
			return ast.WalkContinue, nil
		}

		for _, row := range rows {
			entry, err := docEntryFromRow(row)
			if err != nil {
				return ast.WalkStop, err
			}
			entries = append(entries, entry)
		}
		found = true
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrDocTableNotFound
	}
	return entries, nil
}

// LoadRuleDoc はファイルからルール文書を読み込んで解析する。
func LoadRuleDoc(path string) ([]DocEntry, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ruledoc: read %s: %w", path, err)
	}
	return ParseRuleDoc(source)
}

/**
 * readTable はヘッダーが一致した場合のみ本文行を文字列の行列として返す。
 */
func readTable(table *east.Table, source []byte) ([][]string, bool) {
	var header []string
	var rows [][]string

	for child := table.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *east.TableHeader:
			header = readCells(row, source)
		case *east.TableRow:
			rows = append(rows, readCells(row, source))
		}
	}

	if len(header) != len(docTableHeader) {
		return nil, false
	}
	for i, want := range docTableHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, false
		}
	}
	return rows, true
}

func readCells(row ast.Node, source []byte) []string {
	var cells []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		cells = append(cells, strings.TrimSpace(nodeText(cell, source)))
	}
	return cells
}

// 強調やリンクの中も含め、セル配下のテキストを連結する。
func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

func docEntryFromRow(row []string) (DocEntry, error) {
	if len(row) != len(docTableHeader) {
		return DocEntry{}, fmt.Errorf("ruledoc: row has %d columns, want %d", len(row), len(docTableHeader))
	}

	maxLen, err := parseCharCount(row[2])
	if err != nil {
		return DocEntry{}, fmt.Errorf("ruledoc: %s/%s max length: %w", row[0], row[1], err)
	}
	optLen, err := parseCharCount(row[3])
	if err != nil {
		return DocEntry{}, fmt.Errorf("ruledoc: %s/%s optimal length: %w", row[0], row[1], err)
	}

	return DocEntry{
		Platform:      row[0],
		Field:         row[1],
		MaxLength:     maxLen,
		OptimalLength: optLen,
		Source:        row[4],
	}, nil
}

// "100 chars" 形式の値を数値へ変換する。"-" は 0 扱い。
func parseCharCount(cell string) (int, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == "-" {
		return 0, nil
	}
	cell = strings.TrimSuffix(cell, " chars")
	n, err := strconv.Atoi(cell)
	if err != nil {
		return 0, err
	}
	return n, nil
}
