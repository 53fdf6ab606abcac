package globre_test

import (
	"testing"

	"github.com/lwmacct/260831-go-pkg-bashsub/pkg/globre"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		greedy  bool
		want    string
	}{
		{name: "empty pattern", pattern: "", greedy: true, want: ""},
		{name: "plain literal", pattern: "abc", greedy: true, want: "abc"},
		{name: "greedy star", pattern: "*", greedy: true, want: ".*"},
		{name: "lazy star", pattern: "*", greedy: false, want: ".*?"},
		{name: "question mark", pattern: "a?c", greedy: true, want: "a.c"},
		{name: "metacharacters quoted", pattern: "a.b+c", greedy: true, want: `a\.b\+c`},
		{name: "star with literal tail", pattern: "*.log", greedy: true, want: `.*\.log`},
		{name: "character class", pattern: "[abc]", greedy: true, want: "[abc]"},
		{name: "character range", pattern: "[a-z]", greedy: true, want: "[a-z]"},
		{name: "negated class", pattern: "[!abc]", greedy: true, want: "[^abc]"},
		{name: "class members verbatim", pattern: "[.*?]", greedy: true, want: "[.*?]"},
		{name: "unterminated class closed", pattern: "[ab", greedy: true, want: "[ab]"},
		{name: "mixed pattern", pattern: "pre*[0-9]?.txt", greedy: false, want: `pre.*?[0-9].\.txt`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, globre.Translate(tt.pattern, tt.greedy))
		})
	}
}

func TestTranslate_MultibyteLiteral(t *testing.T) {
	// 多字节内容原样透传，整体仍是合法 UTF-8
	assert.Equal(t, "中文.*?日志", globre.Translate("中文*日志", false))
	assert.Equal(t, "值.*", globre.Translate("值*", true))
}

func TestCompile(t *testing.T) {
	t.Run("compiled pattern matches", func(t *testing.T) {
		re, err := globre.Compile("a*c", true)
		require.NoError(t, err)
		assert.True(t, re.MatchString("abbbc"))
		assert.True(t, re.MatchString("ac"))
	})

	t.Run("lazy star prefers shortest", func(t *testing.T) {
		re, err := globre.Compile("a*b", false)
		require.NoError(t, err)
		assert.Equal(t, "ab", re.FindString("abb"))
	})

	t.Run("greedy star prefers longest", func(t *testing.T) {
		re, err := globre.Compile("a*b", true)
		require.NoError(t, err)
		assert.Equal(t, "abb", re.FindString("abb"))
	})

	t.Run("invalid range surfaces at compile", func(t *testing.T) {
		_, err := globre.Compile("[z-a]", true)
		require.Error(t, err)
	})
}
