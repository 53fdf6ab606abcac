// Package cursor 提供基于字节下标的只读文本游标。
//
// 游标是展开语法分析的底层工具：在不可变字符串上维护一个下标，
// 支持前瞻受限的字面量匹配与位置保存/恢复（复制一个整数即可）。
package cursor

import (
	"fmt"
	"strconv"
)

// Cursor 不可变文本上的位置游标。
//
// 零值不可用，请通过 [New] 创建。所有方法按字节推进；
// 展开语法的结构字符均为 ASCII，多字节内容只会被原样透传。
type Cursor struct {
	text string
	pos  int
}

// New 创建指向 text 起始位置的游标。
func New(text string) *Cursor {
	return &Cursor{text: text}
}

// Done 报告游标是否已越过末尾。
func (c *Cursor) Done() bool {
	return c.pos >= len(c.text)
}

// Peek 返回当前字节但不推进；越界时返回 0。
func (c *Cursor) Peek() byte {
	if c.Done() {
		return 0
	}

	return c.text[c.pos]
}

// Next 消费并返回当前字节；越界时返回 0。
func (c *Cursor) Next() byte {
	if c.Done() {
		return 0
	}
	b := c.text[c.pos]
	c.pos++

	return b
}

// Pos 返回当前字节下标，可与 [Cursor.SetPos] 配合做回溯。
func (c *Cursor) Pos() int {
	return c.pos
}

// SetPos 将游标恢复到之前由 [Cursor.Pos] 保存的位置。
func (c *Cursor) SetPos(pos int) {
	c.pos = pos
}

// Attempt 尝试在当前位置匹配字面量 lit。
//
// 完整匹配时推进游标并返回 true；否则位置不变返回 false。
func (c *Cursor) Attempt(lit string) bool {
	if c.pos+len(lit) > len(c.text) {
		return false
	}
	if c.text[c.pos:c.pos+len(lit)] != lit {
		return false
	}
	c.pos += len(lit)

	return true
}

// Expect 要求在当前位置匹配字面量 lit，失败时返回错误。
//
// 适合消费已经校验过存在的文本。
func (c *Cursor) Expect(lit string) error {
	if !c.Attempt(lit) {
		return fmt.Errorf("expected %q at offset %d", lit, c.pos)
	}

	return nil
}

// Until 消费并返回 stop 之前的所有字节，stop 本身不被消费。
//
// 未找到 stop 时消费到末尾。
func (c *Cursor) Until(stop byte) string {
	start := c.pos
	for !c.Done() && c.Peek() != stop {
		c.pos++
	}

	return c.text[start:c.pos]
}

// Rest 消费并返回剩余全部文本。
func (c *Cursor) Rest() string {
	rest := c.text[c.pos:]
	c.pos = len(c.text)

	return rest
}

// Int 解析当前位置的带符号十进制整数。
//
// 允许若干前导空格（bash 用空格区分 ":-" 与负偏移 ": -3"），
// 符号后必须至少有一位数字；数值限定在 32 位有符号范围内，
// 溢出视为解析错误。
func (c *Cursor) Int() (int, error) {
	for c.Peek() == ' ' {
		c.pos++
	}

	start := c.pos
	if b := c.Peek(); b == '-' || b == '+' {
		c.pos++
	}
	for b := c.Peek(); b >= '0' && b <= '9'; b = c.Peek() {
		c.pos++
	}

	raw := c.text[start:c.pos]
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q at offset %d", raw, start)
	}

	return int(n), nil
}
