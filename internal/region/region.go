// Package region 维护行政区划代码到名称的只读映射，并把 6 位代码
// 解析为 省/市/区 的名称序列。
package region

import (
	"bufio"
	"os"
	"strings"
)

const (
	// UnknownProvince 在省级代码查不到时作为整个地址的兜底文本。
	UnknownProvince = "未知省份"
	// UnknownRegion 是防御性兜底：任何一级都没有产出名称时使用。
	UnknownRegion = "未知地区"
)

// Directory 是行政区划代码库。构造完成后只读，可被任意多个
// 解析调用并发使用。
type Directory struct {
	codes map[string]string
}

// Empty 返回空代码库（查任何代码都会落到兜底文本）。
func Empty() Directory {
	return Directory{codes: map[string]string{}}
}

// FromMap 用现成的映射构造代码库。入参会被拷贝，之后外部修改不影响结果。
func FromMap(m map[string]string) Directory {
	codes := make(map[string]string, len(m))
	for k, v := range m {
		codes[k] = v
	}
	return Directory{codes: codes}
}

// Load 从平面文本文件加载代码库：每行两个空白分隔的字段（6 位代码、名称，
// 名称内部可用 '/' 表达层级），其余行一律跳过。
//
// 约束：文件缺失或不可读不是致命错误——返回空代码库和 err，由调用方
// 决定是否提示；解析管线在空代码库下按兜底文本降级。
func Load(path string) (Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return Empty(), err
	}
	defer f.Close()

	codes := make(map[string]string, 4096)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		parts := strings.Fields(sc.Text())
		if len(parts) != 2 {
			continue
		}
		codes[parts[0]] = parts[1]
	}
	if err := sc.Err(); err != nil {
		return Empty(), err
	}
	return Directory{codes: codes}, nil
}

// Len 返回代码库条目数。
func (d Directory) Len() int { return len(d.codes) }

// Resolve 把 6 位行政区划代码逐级解析为名称序列（至少一个元素）。
//
// 层级规则：
// - 省级：前 2 位补 4 个 0；查不到直接返回 [未知省份]，不再查市/区
// - 市级：前 4 位补 2 个 0；与省级代码不同且存在时，取值的最后一个 '/' 段
// - 区县级：完整 6 位；存在时取值的最后一个 '/' 段
//
// 值里没有 '/' 时，"最后一段"就是整个字符串。缺失更细一级只是少一个
// 元素，不影响整体有效性。
func (d Directory) Resolve(code string) []string {
	details := make([]string, 0, 3)

	provinceCode := code[:2] + "0000"
	province, ok := d.codes[provinceCode]
	if !ok {
		return []string{UnknownProvince}
	}
	details = append(details, province)

	cityCode := code[:4] + "00"
	if cityCode != provinceCode {
		if city, ok := d.codes[cityCode]; ok {
			details = append(details, lastSegment(city))
		}
	}

	if district, ok := d.codes[code]; ok {
		details = append(details, lastSegment(district))
	}

	if len(details) == 0 {
		return []string{UnknownRegion}
	}
	return details
}

func lastSegment(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}
	return s
}
