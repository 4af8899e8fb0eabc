// Package attr 从出生日期派生展示属性：周岁、星座、生肖、出生季节。
//
// 所有函数都是纯函数；参考日期由调用方显式传入，便于测试。
package attr

import "time"

// 星座分界表：cutoff = 月*100+日（上界，不含），按升序排列。
// 首条 120 意味着 1 月 20 日前属于上一年末的摩羯座（回绕到表尾）。
var zodiacSigns = []struct {
	cutoff int
	sign   string
}{
	{120, "水瓶座"}, {219, "双鱼座"}, {321, "白羊座"}, {420, "金牛座"},
	{521, "双子座"}, {622, "巨蟹座"}, {723, "狮子座"}, {823, "处女座"},
	{923, "天秤座"}, {1024, "天蝎座"}, {1123, "射手座"}, {1222, "摩羯座"},
}

// 生肖十二年循环，1900 年为鼠年。
var animals = [12]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}

// Age 计算 ref 当日的周岁：年份差，生日未到再减一。
func Age(birth, ref time.Time) int {
	age := ref.Year() - birth.Year()
	if ref.Month() < birth.Month() || (ref.Month() == birth.Month() && ref.Day() < birth.Day()) {
		age--
	}
	return age
}

// ZodiacSign 按分界表返回星座：取第一条 cutoff 大于 月*100+日 的
// 前一条；命中表首则回绕到表尾；全部不大于则取表尾（12 月 22 日起）。
func ZodiacSign(month time.Month, day int) string {
	birthNum := int(month)*100 + day
	for i, z := range zodiacSigns {
		if birthNum < z.cutoff {
			if i == 0 {
				return zodiacSigns[len(zodiacSigns)-1].sign
			}
			return zodiacSigns[i-1].sign
		}
	}
	return zodiacSigns[len(zodiacSigns)-1].sign
}

// ChineseZodiac 返回出生年份的生肖。
// 1900 年前的年份也要落在 [0,12) 内，所以用向下取整的模。
func ChineseZodiac(year int) string {
	i := (year - 1900) % 12
	if i < 0 {
		i += 12
	}
	return animals[i]
}

// BirthSeason 返回出生月份所属季节：3–5 春，6–8 夏，9–11 秋，其余冬。
func BirthSeason(month time.Month) string {
	switch {
	case month >= 3 && month <= 5:
		return "春季"
	case month >= 6 && month <= 8:
		return "夏季"
	case month >= 9 && month <= 11:
		return "秋季"
	default:
		return "冬季"
	}
}
