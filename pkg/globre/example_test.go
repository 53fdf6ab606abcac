package globre_test

import (
	"fmt"

	"github.com/lwmacct/260831-go-pkg-bashsub/pkg/globre"
)

// ExampleTranslate 演示贪婪与非贪婪两种翻译结果。
func ExampleTranslate() {
	fmt.Println(globre.Translate("*.log", true))
	fmt.Println(globre.Translate("*.log", false))

	// Output:
	// .*\.log
	// .*?\.log
}

// ExampleCompile 演示直接编译并匹配。
func ExampleCompile() {
	re, _ := globre.Compile("report-[0-9]?.txt", true)
	fmt.Println(re.MatchString("report-1a.txt"))
	fmt.Println(re.MatchString("report-x.txt"))

	// Output:
	// true
	// false
}
