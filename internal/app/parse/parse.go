// Package parse 把各阶段串成一条解析管线：规范化 → 行政区划 → 出生日期 →
// 派生属性 → 性别/校验位。
package parse

import (
	"errors"
	"strings"
	"time"

	"github.com/wrenhold/sfzinfo/internal/attr"
	"github.com/wrenhold/sfzinfo/internal/domain"
	"github.com/wrenhold/sfzinfo/internal/idnum"
	"github.com/wrenhold/sfzinfo/internal/region"
)

// Parse 解析单个身份证号码并返回终态结果。
//
// 约束：
// - 任何阶段失败都立即降级为 Valid=false 的 Info，不向外抛错
// - 纯函数：只依赖 (raw, dir, ref)，可被并发调用
// - ref 是计算周岁的参考日期，由调用方传入（通常是“今天”）
func Parse(raw string, dir region.Directory, ref time.Time) domain.Info {
	info := domain.Info{Input: raw}

	id, err := idnum.Normalize(raw)
	if err != nil {
		return failed(raw, err)
	}
	info.ID = string(id)

	info.Address = strings.Join(dir.Resolve(id.RegionCode()), " ")

	birth, err := time.Parse("20060102", id.BirthText())
	if err != nil {
		// 失败结果只保留输入与错误字段，已填的中间字段一并丢弃。
		return domain.Info{
			Input:     raw,
			ErrorCode: domain.ErrCodeBadBirthDate,
			ErrorMsg:  "无效的出生日期",
		}
	}

	info.BirthDate = birth.Format("2006-01-02")
	info.Age = attr.Age(birth, ref)
	info.Zodiac = attr.ZodiacSign(birth.Month(), birth.Day())
	info.Animal = attr.ChineseZodiac(birth.Year())
	info.Season = attr.BirthSeason(birth.Month())

	if id.GenderDigit()%2 == 1 {
		info.Gender = domain.GenderMale
	} else {
		info.Gender = domain.GenderFemale
	}
	info.CheckChar = id.CheckChar()
	info.Valid = true
	return info
}

// failed 把规范化错误转成终态 Info：除 Input 与错误字段外全部保持零值。
func failed(raw string, err error) domain.Info {
	out := domain.Info{Input: raw}
	var fe *idnum.FormatError
	if errors.As(err, &fe) {
		out.ErrorCode = fe.Code
		out.ErrorMsg = fe.Msg
		return out
	}
	out.ErrorCode = domain.ErrCodeBad18Format
	out.ErrorMsg = err.Error()
	return out
}
