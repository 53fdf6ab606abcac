package globre

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lwmacct/260831-go-pkg-bashsub/internal/cursor"
)

// Translate 将通配符模式翻译为等价的正则表达式文本。
//
// greedy 控制 "*" 的翻译结果：true 为 ".*"（尽量多吃），
// false 为 ".*?"（尽量少吃）。bash 的最短/最长匹配语义
// （"#" 与 "##"、"%" 与 "%%"）正是靠这一偏好实现的。
//
// 返回的文本不带锚点，调用方按需拼接 "^" 或 "$"。
// 字符类成员原样透传，因此形如 "[z-a]" 的非法区间要到
// regexp 编译阶段才会暴露。
func Translate(pattern string, greedy bool) string {
	var sb strings.Builder
	cur := cursor.New(pattern)

	for !cur.Done() {
		switch {
		case cur.Attempt("*"):
			if greedy {
				sb.WriteString(".*")
			} else {
				sb.WriteString(".*?")
			}
		case cur.Attempt("?"):
			sb.WriteString(".")
		case cur.Attempt("["):
			sb.WriteByte('[')
			if cur.Attempt("!") {
				sb.WriteByte('^')
			}
			// 区间与成员不做任何转义，到 "]" 为止
			sb.WriteString(cur.Until(']'))
			sb.WriteByte(']')
			cur.Attempt("]")
		default:
			b := cur.Next()
			if b < utf8.RuneSelf {
				sb.WriteString(regexp.QuoteMeta(string(rune(b))))
			} else {
				// 多字节内容无需引用，原样透传
				sb.WriteByte(b)
			}
		}
	}

	return sb.String()
}

// Compile 在 [Translate] 的基础上直接编译为 *regexp.Regexp。
//
// 需要锚定匹配时请自行拼接锚点后调用 regexp.Compile。
func Compile(pattern string, greedy bool) (*regexp.Regexp, error) {
	return regexp.Compile(Translate(pattern, greedy))
}
