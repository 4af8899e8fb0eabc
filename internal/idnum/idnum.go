package idnum

import (
	"strings"

	"github.com/wrenhold/sfzinfo/internal/domain"
)

// 加权求和 mod 11 的系数表与校验字符表（GB 11643-1999）。
var (
	weights    = [17]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
	checkChars = [11]byte{'1', '0', 'X', '9', '8', '7', '6', '5', '4', '3', '2'}
)

// FormatError 表示号码无法规范化为合法的 18 位形态。
//
// Expected 仅在 Code=check_mismatch 时有值（期望的校验字符）。
type FormatError struct {
	Code     string
	Msg      string
	Expected byte
}

func (e *FormatError) Error() string { return e.Msg }

// ComputeCheck 计算 17 位号码的校验字符。
//
// 前置条件：id17 恰好为 17 个 ASCII 数字；调用方负责保证，不做检查。
func ComputeCheck(id17 string) byte {
	sum := 0
	for i := 0; i < 17; i++ {
		sum += int(id17[i]-'0') * weights[i]
	}
	return checkChars[sum%11]
}

// Upgrade15 把 15 位旧号码升级为 18 位：在第 6 位后插入世纪 "19"，
// 再对得到的 17 位计算校验字符。
//
// 注意：15 位旧格式均为 2000 年前签发，世纪固定取 "19" 是源格式的
// 历史约定，不做推断。
func Upgrade15(id15 string) string {
	id17 := id15[:6] + "19" + id15[6:]
	return id17 + string(ComputeCheck(id17))
}

// Normalize 把任意输入规范化为经过校验的 18 位号码。
//
// 流程（与失败码一一对应，逐级短路）：
// 1. 去空白、转大写（小写 x 校验位由此转正）
// 2. 17 位：必须全数字，补算第 18 位校验字符
// 3. 此后长度必须是 15 或 18
// 4. 15 位：必须全数字，按 Upgrade15 升级
// 5. 候选必须是 18 位且前 17 位全数字
// 6. 重算校验字符并与第 18 位比对
//
// 失败时返回 *FormatError。
func Normalize(raw string) (domain.ID, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))

	if len(s) == 17 {
		if !allDigits(s) {
			return "", &FormatError{Code: domain.ErrCodeBad17Digits, Msg: "17 位身份证必须全为数字"}
		}
		s = s + string(ComputeCheck(s))
	}

	if len(s) != 15 && len(s) != 18 {
		return "", &FormatError{Code: domain.ErrCodeBadLength, Msg: "身份证号码长度不正确"}
	}

	if len(s) == 15 {
		if !allDigits(s) {
			return "", &FormatError{Code: domain.ErrCodeBad15, Msg: "无效的 15 位身份证号码"}
		}
		s = Upgrade15(s)
	}

	if len(s) != 18 || !allDigits(s[:17]) {
		return "", &FormatError{Code: domain.ErrCodeBad18Format, Msg: "无效的 18 位身份证格式"}
	}

	expected := ComputeCheck(s[:17])
	if s[17] != expected {
		return "", &FormatError{
			Code:     domain.ErrCodeCheckMismatch,
			Msg:      "校验码不匹配（应为 " + string(expected) + "）",
			Expected: expected,
		}
	}

	return domain.ID(s), nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
