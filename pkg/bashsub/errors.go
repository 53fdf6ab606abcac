package bashsub

import (
	"errors"
	"fmt"
)

// ErrUnmatchedBrace 表示扫描到 "${" 却没有配对的 "}"。
//
// 整次替换随之终止，不产生部分结果。
var ErrUnmatchedBrace = errors.New("bashsub: unmatched ${")

// MalformedExpansionError 表示 ${...} 内部语法无效。
//
// 涵盖：非法参数名、缺少替换分隔符、无法解析的整数、
// 未知的 "@" 操作符以及操作符之后的多余文本。
type MalformedExpansionError struct {
	Expr   string // 花括号之间的原始表达式
	Reason string
}

func (e *MalformedExpansionError) Error() string {
	return fmt.Sprintf("bashsub: unsupported expansion %q: %s", e.Expr, e.Reason)
}

// UnsetVariableError 表示对未设置变量的致命引用。
//
// 触发来源：严格模式下的普通查找、":?" 操作符、
// 以及间接引用中未设置的指针变量。
type UnsetVariableError struct {
	Name    string // 违规的变量名
	Message string // ":?" 携带的自定义消息，可为空
}

func (e *UnsetVariableError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("bashsub: %s: parameter null or not set", e.Name)
	}

	return fmt.Sprintf("bashsub: %s: %s", e.Name, e.Message)
}
