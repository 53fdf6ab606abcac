package bashsub_test

import (
	"errors"
	"fmt"

	"github.com/lwmacct/260831-go-pkg-bashsub/pkg/bashsub"
)

// Example_basic 演示最基础的展开与默认值回退。
func Example_basic() {
	vars := map[string]string{"HOST": "example.com"}

	result, _ := bashsub.Substitute(vars, "host=${HOST} port=${PORT:-8080}")
	fmt.Println(result)

	// Output:
	// host=example.com port=8080
}

// Example_patternOps 演示模式裁剪与替换操作符。
func Example_patternOps() {
	vars := map[string]string{"FILE": "archive.tar.gz"}

	trimmed, _ := bashsub.Substitute(vars, "${FILE%.gz}")
	stem, _ := bashsub.Substitute(vars, "${FILE%%.*}")
	replaced, _ := bashsub.Substitute(vars, "${FILE/tar/zip}")
	fmt.Println(trimmed)
	fmt.Println(stem)
	fmt.Println(replaced)

	// Output:
	// archive.tar
	// archive
	// archive.zip.gz
}

// Example_strict 演示严格模式下未设置变量的错误。
func Example_strict() {
	_, err := bashsub.SubstituteStrict(map[string]string{}, "${MISSING}")

	var unset *bashsub.UnsetVariableError
	if errors.As(err, &unset) {
		fmt.Println(unset.Name)
	}

	// Output:
	// MISSING
}

// ExampleSubstitutor_Substitute 演示复用同一替换器处理多段文本。
func ExampleSubstitutor_Substitute() {
	sub := bashsub.New(map[string]string{"USER": "alice"})

	for _, tmpl := range []string{"hello ${USER@u}", "HOME=/home/${USER}"} {
		result, _ := sub.Substitute(tmpl)
		fmt.Println(result)
	}

	// Output:
	// hello Alice
	// HOME=/home/alice
}
