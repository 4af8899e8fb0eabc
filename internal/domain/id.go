package domain

// ID 是规范化后的 18 位身份证号码（前 17 位数字 + 数字或 'X' 校验位）。
//
// 约束：ID 只能由 idnum.Normalize 产生；手工构造的字符串不保证满足
// 各访问器的前提（长度 18、前 17 位全数字）。
type ID string

// RegionCode 返回前 6 位行政区划代码。
func (id ID) RegionCode() string { return string(id[:6]) }

// BirthText 返回第 7–14 位出生日期段（YYYYMMDD，未验证是否为合法日历日）。
func (id ID) BirthText() string { return string(id[6:14]) }

// GenderDigit 返回第 17 位（下标 16）的顺序码数字：奇数为男，偶数为女。
func (id ID) GenderDigit() int { return int(id[16] - '0') }

// CheckChar 返回第 18 位校验字符（'0'–'9' 或 'X'）。
func (id ID) CheckChar() string { return string(id[17]) }
