// Package bashsub 提供 bash 风格的参数展开替换。
//
// 该包只做字符串替换：在输入文本中定位 ${...} 展开区间，
// 按 shell 参数展开语法求值后拼回输出。变量映射由调用方提供，
// 不执行命令、不读写文件，适合配置模板等轻量场景。
//
// # 设计参考
//
//   - Bash 参数展开: https://www.gnu.org/software/bash/manual/bash.html#Shell-Parameter-Expansion
//
// # 支持的语法
//
//   - ${NAME} - 变量替换，间接引用写作 ${!NAME}
//   - ${NAME:-word} / ${NAME:+word} / ${NAME:?word} - 默认值 / 替代值 / 必填校验
//   - ${NAME:offset} / ${NAME:offset:length} - 子串截取，支持负偏移
//   - ${NAME#pat} / ${NAME##pat} / ${NAME%pat} / ${NAME%%pat} - 前后缀裁剪
//   - ${NAME/pat/repl} / ${NAME//pat/repl} / ${NAME/#pat/repl} / ${NAME/%pat/repl} - 模式替换
//   - ${NAME^pat} / ${NAME^^pat} / ${NAME,pat} / ${NAME,,pat} - 按模式大小写变换
//   - ${NAME@U} / ${NAME@u} / ${NAME@L} - 整值大小写变换
//
// # 语义说明
//
//  1. 仅识别 ${...}（不解析 $VAR，也没有 $$ 转义）
//  2. 操作数是字面文本，不会被再次扫描展开
//  3. 空值与未设置对所有操作符等价；严格模式只对真正未设置的名字报错
//  4. 间接引用要求指针变量必须已设置；指向的目标未设置则得到空串
//  5. 任何错误都使整次调用失败，不产生部分替换的结果
//
// # 不支持的语法
//
// 算术展开、命令替换、进程替换、文件名展开、波浪号展开、
// 花括号展开、引号与转义、数组变量、":=" 赋值。
//
// # 快速开始
//
// 一次性替换：
//
//	result, err := bashsub.Substitute(map[string]string{"HOST": "db1"},
//	    `addr: ${HOST}:${PORT:-5432}`)
//
// 复用替换器并启用严格模式：
//
//	sub := bashsub.New(bashsub.Environ(), bashsub.WithStrict())
//	result, err := sub.Substitute(`key=${API_KEY}`)
//
// 详见 [Substitutor] 文档。
package bashsub
