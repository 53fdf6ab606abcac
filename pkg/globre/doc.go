// Package globre 提供 shell 通配符到正则表达式的翻译。
//
// 仅翻译、不匹配：输出是一段正则文本，由调用方交给 regexp 编译执行。
// bashsub 的前后缀裁剪与模式替换操作依赖本包，也可单独使用。
//
// # 支持的通配语法
//
//   - "*"      零个或多个任意字符；贪婪翻译为 ".*"，非贪婪为 ".*?"
//   - "?"      恰好一个任意字符，翻译为 "."
//   - "[...]"  字符类；"[!...]" 为取反类，区间与成员原样透传
//   - 其余字符一律按字面量引用
//
// # 语义说明
//
//  1. 贪婪标志只改变 "*" 的回溯偏好，不影响匹配正确性
//  2. 字符类内部不做转义处理，不支持 POSIX 类（如 [:alpha:]）
//  3. 空模式是合法输入，翻译结果匹配空串
//
// # 快速开始
//
//	re := regexp.MustCompile("^" + globre.Translate("*.log", true) + "$")
//	re.MatchString("build.log") // true
package globre
