package bashsub

import (
	"errors"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lwmacct/260831-go-pkg-bashsub/internal/cursor"
	"github.com/lwmacct/260831-go-pkg-bashsub/pkg/globre"
)

// ═══════════════════════════════════════════════════════════════════════════
// 替换器
// ═══════════════════════════════════════════════════════════════════════════

// Substitutor 绑定一份变量映射与严格模式标志的可复用替换器。
//
// 构造后不可变：切换严格模式请重新构造，而不是共享可变状态。
// 同一实例可被多个 goroutine 并发使用（映射仅被读取）。
type Substitutor struct {
	vars   map[string]string
	strict bool
}

// Option 替换器构造选项。
type Option func(*Substitutor)

// WithStrict 启用严格模式。
//
// 严格模式下，引用真正未设置的变量是致命的 [UnsetVariableError]，
// 但 ":-"、":+"、":?" 自带兜底语义，不受该检查影响；
// 已设置但值为空的变量同样不会触发该错误。
func WithStrict() Option {
	return func(s *Substitutor) {
		s.strict = true
	}
}

// New 创建绑定 vars 的替换器。
//
// vars 由调用方持有，替换过程只读不写。
func New(vars map[string]string, opts ...Option) *Substitutor {
	s := &Substitutor{vars: vars}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Substitute 等价于 New(vars).Substitute(text)，适合一次性调用。
func Substitute(vars map[string]string, text string) (string, error) {
	return New(vars).Substitute(text)
}

// SubstituteStrict 等价于 New(vars, WithStrict()).Substitute(text)。
func SubstituteStrict(vars map[string]string, text string) (string, error) {
	return New(vars, WithStrict()).Substitute(text)
}

// Environ 生成当前进程环境变量的快照映射。
//
// 快照与进程环境解耦，适合直接交给 [New] 或 [Substitute]。
func Environ() map[string]string {
	vars := make(map[string]string)
	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) == 2 {
			vars[parts[0]] = parts[1]
		}
	}

	return vars
}

// Strict 报告该实例是否处于严格模式。
func (s *Substitutor) Strict() bool {
	return s.strict
}

// Substitute 对 text 执行 bash 风格参数展开。
//
// 扫描每个 "${...}" 展开区间并求值，区间外的文本原样透传。
// 区间边界按花括号深度计数确定，因此操作数里配对的花括号
// （如字符类 "[{}]" 之类的字面文本）不会提前闭合区间。
//
// 任何错误都会使整次调用失败，不返回部分结果。
func (s *Substitutor) Substitute(text string) (string, error) {
	if !strings.Contains(text, "${") {
		return text, nil
	}

	var buf strings.Builder
	buf.Grow(len(text))

	cur := cursor.New(text)
	for !cur.Done() {
		if !cur.Attempt("${") {
			buf.WriteByte(cur.Next())
			continue
		}

		start := cur.Pos()
		depth := 1
		for !cur.Done() && depth > 0 {
			switch cur.Next() {
			case '{':
				depth++
			case '}':
				depth--
			}
		}
		if depth > 0 {
			return "", ErrUnmatchedBrace
		}

		// 终止的 "}" 已被消费，不属于表达式体
		result, err := s.evaluate(text[start : cur.Pos()-1])
		if err != nil {
			return "", err
		}
		buf.WriteString(result)
	}

	return buf.String(), nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 操作符求值
// ═══════════════════════════════════════════════════════════════════════════

// evaluate 解析并求值一个表达式体。
func (s *Substitutor) evaluate(expr string) (string, error) {
	exp, err := parseExpansion(expr)
	if err != nil {
		return "", err
	}

	switch exp.kind {
	case opBare:
		value, _, err := s.lookup(exp)
		return value, err

	case opDefault:
		// 变量未设置时返回默认值，严格模式也不例外
		value, ok, err := s.lookup(exp)
		if err != nil {
			var unset *UnsetVariableError
			if errors.As(err, &unset) {
				return exp.word, nil
			}
			return "", err
		}
		if ok {
			return value, nil
		}
		return exp.word, nil

	case opAlternate:
		// 与 ":-" 相反：设置了才返回替代值
		_, ok, err := s.lookup(exp)
		if err != nil {
			var unset *UnsetVariableError
			if errors.As(err, &unset) {
				return "", nil
			}
			return "", err
		}
		if ok {
			return exp.word, nil
		}
		return "", nil

	case opErrorIfUnset:
		value, ok, err := s.lookup(exp)
		if err != nil {
			var unset *UnsetVariableError
			if !errors.As(err, &unset) {
				return "", err
			}
			// 严格模式的查找错误在这里视作未设置，稍后统一报错
			ok = false
		}
		if ok {
			return value, nil
		}
		return "", &UnsetVariableError{Name: exp.name, Message: exp.word}

	case opSubstring:
		value, _, err := s.lookup(exp)
		if err != nil {
			return "", err
		}
		return substring(value, exp), nil

	case opTrimPrefix, opTrimPrefixLong:
		value, _, err := s.lookup(exp)
		if err != nil {
			return "", err
		}
		return s.trimPrefix(value, exp.word, exp.kind == opTrimPrefixLong)

	case opTrimSuffix, opTrimSuffixLong:
		value, _, err := s.lookup(exp)
		if err != nil {
			return "", err
		}
		return s.trimSuffix(value, exp.word, exp.kind == opTrimSuffixLong)

	case opReplaceFirst, opReplaceAll, opReplaceStart, opReplaceEnd:
		value, _, err := s.lookup(exp)
		if err != nil {
			return "", err
		}
		return s.replace(value, exp)

	case opUpperFirst, opUpperAll, opLowerFirst, opLowerAll:
		value, _, err := s.lookup(exp)
		if err != nil {
			return "", err
		}
		return s.caseMatch(value, exp)

	case opCaseWhole:
		value, _, err := s.lookup(exp)
		if err != nil {
			return "", err
		}
		return caseWhole(value, exp.caseOp), nil
	}

	return "", &MalformedExpansionError{Expr: expr, Reason: "unsupported operator"}
}

// lookup 查找参数引用的值。
//
// 返回 (值, 是否视为已设置, 错误)。已设置但为空的变量统一归一化为
// 未设置（shell 语义：空与未设置对展开而言等价），但只有真正未
// 设置的名字才会触发严格模式错误。
//
// 间接引用的错误行为是不对称的：指针变量未设置在任何模式下都是
// 致命错误；指针指向的目标变量未设置则在任何模式下都得到空串。
func (s *Substitutor) lookup(exp *expansion) (string, bool, error) {
	name := exp.name

	if exp.indirect {
		pointer, ok := s.vars[name]
		if !ok || pointer == "" {
			return "", false, &UnsetVariableError{Name: name}
		}

		value, ok := s.vars[pointer]
		if !ok || value == "" {
			return "", false, nil
		}
		return value, true, nil
	}

	value, ok := s.vars[name]
	if !ok {
		if s.strict {
			return "", false, &UnsetVariableError{Name: name}
		}
		return "", false, nil
	}
	if value == "" {
		return "", false, nil
	}

	return value, true, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// 值变换
// ═══════════════════════════════════════════════════════════════════════════

// substring 按偏移与可选长度截取子串，越界统一收敛到空串。
func substring(value string, exp *expansion) string {
	n := len(value)

	var start int
	if exp.offset >= 0 {
		start = min(n, exp.offset)
	} else {
		start = max(0, n+exp.offset)
	}

	if !exp.hasLength {
		return value[start:]
	}

	var end int
	if exp.length >= 0 {
		end = min(n, start+exp.length)
	} else {
		end = max(0, n+exp.length)
	}

	if start >= n || end <= start {
		return ""
	}

	return value[start:end]
}

// trimPrefix 删除匹配到的前缀；greedy 区分最长/最短匹配。
func (s *Substitutor) trimPrefix(value, pattern string, greedy bool) (string, error) {
	re, err := compileGlob(pattern, greedy, "^", "")
	if err != nil {
		return "", err
	}
	if loc := re.FindStringIndex(value); loc != nil {
		return value[loc[1]:], nil
	}

	return value, nil
}

// trimSuffix 删除匹配到的后缀；greedy 区分最长/最短匹配。
func (s *Substitutor) trimSuffix(value, pattern string, greedy bool) (string, error) {
	re, err := compileGlob(pattern, greedy, "", "$")
	if err != nil {
		return "", err
	}
	if loc := re.FindStringIndex(value); loc != nil {
		return value[:loc[0]], nil
	}

	return value, nil
}

// replace 实现 "/" 族操作符。模式总是贪婪编译；
// 锚定形式靠 "^"/"$" 把匹配限制在唯一位置，因此至多替换一次。
func (s *Substitutor) replace(value string, exp *expansion) (string, error) {
	var prefix, suffix string
	switch exp.kind {
	case opReplaceStart:
		prefix = "^"
	case opReplaceEnd:
		suffix = "$"
	}

	re, err := compileGlob(exp.word, true, prefix, suffix)
	if err != nil {
		return "", err
	}

	if exp.kind == opReplaceFirst {
		return replaceFirst(re, value, func(string) string { return exp.repl }), nil
	}

	return re.ReplaceAllLiteralString(value, exp.repl), nil
}

// caseMatch 实现按模式的大小写变换（"^"、"^^"、","、",," 族）。
//
// 空模式退化为 "?"（恰好匹配一个字符）。
func (s *Substitutor) caseMatch(value string, exp *expansion) (string, error) {
	pattern := exp.word
	if pattern == "" {
		pattern = "?"
	}

	re, err := compileGlob(pattern, true, "", "")
	if err != nil {
		return "", err
	}

	transform := strings.ToUpper
	if exp.kind == opLowerFirst || exp.kind == opLowerAll {
		transform = strings.ToLower
	}

	if exp.kind == opUpperAll || exp.kind == opLowerAll {
		return re.ReplaceAllStringFunc(value, transform), nil
	}

	return replaceFirst(re, value, transform), nil
}

// caseWhole 实现 "@" 操作符的整值变换。
//
// "@u" 对空值是空操作。
func caseWhole(value string, op byte) string {
	switch op {
	case 'U':
		return strings.ToUpper(value)
	case 'L':
		return strings.ToLower(value)
	case 'u':
		if value == "" {
			return value
		}
		r, size := utf8.DecodeRuneInString(value)
		return string(unicode.ToUpper(r)) + value[size:]
	}

	return value
}

// compileGlob 翻译并编译通配符模式，prefix/suffix 为可选锚点。
//
// 字符类成员原样透传，非法区间等问题在这里才会暴露为编译错误。
func compileGlob(pattern string, greedy bool, prefix, suffix string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(prefix + globre.Translate(pattern, greedy) + suffix)
	if err != nil {
		return nil, &MalformedExpansionError{Expr: pattern, Reason: "invalid pattern: " + err.Error()}
	}

	return re, nil
}

// replaceFirst 仅替换最左侧的一处匹配，未命中时原样返回。
//
// regexp 没有 replace-first 原语，这里基于 FindStringIndex 拼接。
func replaceFirst(re *regexp.Regexp, s string, repl func(string) string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}

	return s[:loc[0]] + repl(s[loc[0]:loc[1]]) + s[loc[1]:]
}
