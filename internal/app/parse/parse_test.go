package parse

import (
	"testing"
	"time"

	"github.com/wrenhold/sfzinfo/internal/domain"
	"github.com/wrenhold/sfzinfo/internal/region"
)

func beijingDirectory() region.Directory {
	return region.FromMap(map[string]string{
		"110000": "北京市",
		"110100": "北京市/市辖区",
		"110105": "北京市/市辖区/朝阳区",
	})
}

func refDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse_Valid18(t *testing.T) {
	got := Parse("110105199003078510", beijingDirectory(), refDate(2024, 1, 1))

	if !got.Valid {
		t.Fatalf("期望有效，实际错误：%s（%s）", got.ErrorMsg, got.ErrorCode)
	}
	if got.ErrorCode != "" || got.ErrorMsg != "" {
		t.Fatalf("有效结果不应携带错误字段：%+v", got)
	}
	if got.Address != "北京市 市辖区 朝阳区" {
		t.Fatalf("地址不对：%q", got.Address)
	}
	if got.BirthDate != "1990-03-07" {
		t.Fatalf("出生日期不对：%q", got.BirthDate)
	}
	if got.Age != 33 { // 2024-01-01 时生日未到
		t.Fatalf("年龄不对：%d", got.Age)
	}
	if got.Gender != domain.GenderMale { // 第 17 位为 1（奇数）
		t.Fatalf("性别不对：%q", got.Gender)
	}
	if got.CheckChar != "0" {
		t.Fatalf("校验位不对：%q", got.CheckChar)
	}
	if got.Zodiac != "双鱼座" || got.Animal != "马" || got.Season != "春季" {
		t.Fatalf("派生属性不对：%s/%s/%s", got.Zodiac, got.Animal, got.Season)
	}
}

func TestParse_Legacy15(t *testing.T) {
	got := Parse("110105491231002", beijingDirectory(), refDate(2024, 1, 1))

	if !got.Valid {
		t.Fatalf("期望有效，实际错误：%s", got.ErrorMsg)
	}
	if got.ID != "11010519491231002X" {
		t.Fatalf("升级结果不对：%q", got.ID)
	}
	if got.BirthDate != "1949-12-31" {
		t.Fatalf("出生日期不对：%q", got.BirthDate)
	}
	if got.Age != 74 {
		t.Fatalf("年龄不对：%d", got.Age)
	}
	if got.Gender != domain.GenderFemale { // 第 17 位为 2（偶数）
		t.Fatalf("性别不对：%q", got.Gender)
	}
	if got.Zodiac != "摩羯座" || got.Animal != "牛" || got.Season != "冬季" {
		t.Fatalf("派生属性不对：%s/%s/%s", got.Zodiac, got.Animal, got.Season)
	}
}

func TestParse_Complete17(t *testing.T) {
	got := Parse("11010519491231002", beijingDirectory(), refDate(2024, 1, 1))
	if !got.Valid {
		t.Fatalf("期望有效，实际错误：%s", got.ErrorMsg)
	}
	if got.ID != "11010519491231002X" || got.CheckChar != "X" {
		t.Fatalf("17 位补全不对：id=%q check=%q", got.ID, got.CheckChar)
	}
}

func TestParse_BadLengthLeavesZeroFields(t *testing.T) {
	got := Parse("1234567890", beijingDirectory(), refDate(2024, 1, 1))

	if got.Valid {
		t.Fatalf("期望无效")
	}
	if got.ErrorCode != domain.ErrCodeBadLength {
		t.Fatalf("期望 %s，实际 %s", domain.ErrCodeBadLength, got.ErrorCode)
	}
	if got.ErrorMsg != "身份证号码长度不正确" {
		t.Fatalf("错误信息不对：%q", got.ErrorMsg)
	}
	// 除输入回显与错误字段外，其余必须保持零值。
	if got.ID != "" || got.Address != "" || got.BirthDate != "" || got.Age != 0 ||
		got.Gender != "" || got.CheckChar != "" || got.Zodiac != "" ||
		got.Animal != "" || got.Season != "" {
		t.Fatalf("失败结果泄漏了非零字段：%+v", got)
	}
}

func TestParse_CheckMismatch(t *testing.T) {
	got := Parse("110105199003078515", beijingDirectory(), refDate(2024, 1, 1))
	if got.Valid || got.ErrorCode != domain.ErrCodeCheckMismatch {
		t.Fatalf("期望校验失败，实际：%+v", got)
	}
	if got.ErrorMsg != "校验码不匹配（应为 0）" {
		t.Fatalf("错误信息不对：%q", got.ErrorMsg)
	}
}

func TestParse_BadBirthDate(t *testing.T) {
	// 两个号码的校验位都正确，日期段分别是 13 月和 32 日。
	for _, in := range []string{"110105199013078514", "110105199003328516"} {
		got := Parse(in, beijingDirectory(), refDate(2024, 1, 1))
		if got.Valid || got.ErrorCode != domain.ErrCodeBadBirthDate {
			t.Fatalf("%s：期望 bad_birth_date，实际 %+v", in, got)
		}
		if got.Address != "" || got.BirthDate != "" {
			t.Fatalf("%s：失败结果不应保留中间字段：%+v", in, got)
		}
	}
}

func TestParse_UnknownProvince(t *testing.T) {
	got := Parse("110105199003078510", region.Empty(), refDate(2024, 1, 1))
	if !got.Valid {
		t.Fatalf("行政区划缺失不影响整体有效性：%+v", got)
	}
	if got.Address != region.UnknownProvince {
		t.Fatalf("期望地址 %q，实际 %q", region.UnknownProvince, got.Address)
	}
}

func TestParse_ProvinceOnly(t *testing.T) {
	d := region.FromMap(map[string]string{"110000": "北京市"})
	got := Parse("110105199003078510", d, refDate(2024, 1, 1))
	if !got.Valid || got.Address != "北京市" {
		t.Fatalf("期望地址只剩省名，实际 %+v", got)
	}
}
