package bashsub

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lwmacct/260831-go-pkg-bashsub/internal/cursor"
)

// ═══════════════════════════════════════════════════════════════════════════
// 展开表达式语法
// ═══════════════════════════════════════════════════════════════════════════

// opKind 操作符的封闭变体集合，求值器对其做穷尽分发。
type opKind int

const (
	opBare           opKind = iota // ${NAME}
	opDefault                      // ${NAME:-word}
	opAlternate                    // ${NAME:+word}
	opErrorIfUnset                 // ${NAME:?word}
	opSubstring                    // ${NAME:off} / ${NAME:off:len}
	opTrimPrefix                   // ${NAME#pat}   最短前缀
	opTrimPrefixLong               // ${NAME##pat}  最长前缀
	opTrimSuffix                   // ${NAME%pat}   最短后缀
	opTrimSuffixLong               // ${NAME%%pat}  最长后缀
	opReplaceFirst                 // ${NAME/pat/repl}
	opReplaceAll                   // ${NAME//pat/repl}
	opReplaceStart                 // ${NAME/#pat/repl}
	opReplaceEnd                   // ${NAME/%pat/repl}
	opUpperFirst                   // ${NAME^pat}
	opUpperAll                     // ${NAME^^pat}
	opLowerFirst                   // ${NAME,pat}
	opLowerAll                     // ${NAME,,pat}
	opCaseWhole                    // ${NAME@U} / ${NAME@u} / ${NAME@L}
)

// expansion 一条展开表达式的解析结果，由求值器一次性消费。
type expansion struct {
	name     string // 参数名，不含前导 "!"
	indirect bool   // 是否间接引用 (${!NAME})
	kind     opKind

	word string // 默认值 / 替代值 / 错误消息 / 模式，按 kind 取义
	repl string // "/" 族操作符的替换文本

	offset    int
	length    int
	hasLength bool

	caseOp byte // "@" 的操作符字母 (U/u/L)
}

func isNameStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

func isNameChar(b byte) bool {
	return isNameStart(b) || (b >= '0' && b <= '9')
}

// parseExpansion 解析一个 ${...} 表达式体。
//
// 先读取（可能间接的）参数名，再按固定优先级尝试操作符引导符。
// 顺序经过刻意编排：长引导符在前，避免 ":" 抢占 ":-"、"/" 抢占 "//" 等。
func parseExpansion(expr string) (*expansion, error) {
	if expr == "" {
		return nil, &MalformedExpansionError{Expr: expr, Reason: "empty expression"}
	}

	cur := cursor.New(expr)
	exp := &expansion{}

	if cur.Attempt("!") {
		exp.indirect = true
	}

	if !isNameStart(cur.Peek()) {
		return nil, &MalformedExpansionError{Expr: expr, Reason: "invalid parameter name"}
	}
	nameStart := cur.Pos()
	cur.Next()
	for !cur.Done() && isNameChar(cur.Peek()) {
		cur.Next()
	}
	exp.name = expr[nameStart:cur.Pos()]

	switch {
	case cur.Done():
		exp.kind = opBare

	case cur.Attempt(":-"):
		exp.kind, exp.word = opDefault, cur.Rest()
	case cur.Attempt(":+"):
		exp.kind, exp.word = opAlternate, cur.Rest()
	case cur.Attempt(":?"):
		exp.kind, exp.word = opErrorIfUnset, cur.Rest()
	case cur.Attempt(":"):
		if err := parseSubstring(cur, exp); err != nil {
			return nil, &MalformedExpansionError{Expr: expr, Reason: err.Error()}
		}

	case cur.Attempt("##"):
		exp.kind, exp.word = opTrimPrefixLong, cur.Rest()
	case cur.Attempt("#"):
		exp.kind, exp.word = opTrimPrefix, cur.Rest()
	case cur.Attempt("%%"):
		exp.kind, exp.word = opTrimSuffixLong, cur.Rest()
	case cur.Attempt("%"):
		exp.kind, exp.word = opTrimSuffix, cur.Rest()

	case cur.Attempt("//"):
		if err := parseReplace(cur, exp, opReplaceAll); err != nil {
			return nil, &MalformedExpansionError{Expr: expr, Reason: err.Error()}
		}
	case cur.Attempt("/#"):
		if err := parseReplace(cur, exp, opReplaceStart); err != nil {
			return nil, &MalformedExpansionError{Expr: expr, Reason: err.Error()}
		}
	case cur.Attempt("/%"):
		if err := parseReplace(cur, exp, opReplaceEnd); err != nil {
			return nil, &MalformedExpansionError{Expr: expr, Reason: err.Error()}
		}
	case cur.Attempt("/"):
		if err := parseReplace(cur, exp, opReplaceFirst); err != nil {
			return nil, &MalformedExpansionError{Expr: expr, Reason: err.Error()}
		}

	case cur.Attempt("^^"):
		exp.kind, exp.word = opUpperAll, cur.Rest()
	case cur.Attempt("^"):
		exp.kind, exp.word = opUpperFirst, cur.Rest()
	case cur.Attempt(",,"):
		exp.kind, exp.word = opLowerAll, cur.Rest()
	case cur.Attempt(","):
		exp.kind, exp.word = opLowerFirst, cur.Rest()

	case cur.Attempt("@"):
		if cur.Done() {
			return nil, &MalformedExpansionError{Expr: expr, Reason: "missing @ operator"}
		}
		exp.kind, exp.caseOp = opCaseWhole, cur.Next()
		if exp.caseOp != 'U' && exp.caseOp != 'u' && exp.caseOp != 'L' {
			return nil, &MalformedExpansionError{Expr: expr, Reason: "unknown modifier: @" + string(rune(exp.caseOp))}
		}
		if !cur.Done() {
			return nil, &MalformedExpansionError{Expr: expr, Reason: "unexpected text after @" + string(rune(exp.caseOp))}
		}

	default:
		return nil, &MalformedExpansionError{Expr: expr, Reason: "unsupported operator"}
	}

	return exp, nil
}

// parseSubstring 解析 ":" 之后的 offset / offset:length 形式。
func parseSubstring(cur *cursor.Cursor, exp *expansion) error {
	exp.kind = opSubstring

	offset, err := cur.Int()
	if err != nil {
		return err
	}
	exp.offset = offset

	if cur.Attempt(":") {
		length, err := cur.Int()
		if err != nil {
			return err
		}
		exp.length, exp.hasLength = length, true
	}

	if !cur.Done() {
		return errorUnexpectedText(cur)
	}

	return nil
}

// parseReplace 解析 "/" 族操作符的 pattern 与 replacement 操作数。
//
// 在第一个未转义的 "/" 处切分；"\/" 并入模式并去掉转义符。
// 缺少分隔符是致命解析错误。
func parseReplace(cur *cursor.Cursor, exp *expansion, kind opKind) error {
	exp.kind = kind

	var pattern strings.Builder
	for !cur.Done() && cur.Peek() != '/' {
		b := cur.Next()
		if b == '\\' && cur.Peek() == '/' {
			b = cur.Next()
		}
		pattern.WriteByte(b)
	}
	exp.word = pattern.String()

	if err := cur.Expect("/"); err != nil {
		return errors.New("missing replacement separator")
	}
	exp.repl = cur.Rest()

	return nil
}

func errorUnexpectedText(cur *cursor.Cursor) error {
	return fmt.Errorf("unexpected trailing text %q", cur.Rest())
}
