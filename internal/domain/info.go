package domain

const (
	ErrCodeBadLength     = "bad_length"
	ErrCodeBad17Digits   = "bad_17_digits"
	ErrCodeBad15         = "bad_15"
	ErrCodeBad18Format   = "bad_18_format"
	ErrCodeCheckMismatch = "check_mismatch"
	ErrCodeBadBirthDate  = "bad_birth_date"
	ErrCodeConfigInvalid = "config_invalid"
)

const (
	GenderMale   = "男"
	GenderFemale = "女"
)

// Info 是单个号码的解析结果（parse 命令 stdout JSON 的稳定结构）。
//
// 约束：
// - Valid=true 时 ErrorCode/ErrorMsg 必须为空，且所有派生字段已填充
// - Valid=false 时只有 Input/ErrorCode/ErrorMsg 有意义，其余保持零值
// - Info 构造后不再修改（每次解析产生一个全新的值）
type Info struct {
	Input string `json:"input"`
	ID    string `json:"id"` // 规范化后的 18 位号码（仅成功时）

	Address   string `json:"address"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD，失败时为空
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	CheckChar string `json:"check_char"`

	Zodiac string `json:"zodiac"` // 星座
	Animal string `json:"animal"` // 生肖
	Season string `json:"season"` // 出生季节

	Valid     bool   `json:"valid"`
	ErrorCode string `json:"error_code"`
	ErrorMsg  string `json:"error_msg"`
}

// Report 是一次批量解析的对外稳定输出（stdout JSON）。
type Report struct {
	Items   []Info        `json:"items"`
	Summary ReportSummary `json:"summary"`
}

type ReportSummary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

// Finalize 由 items 计算 summary。items 保持输入顺序（顺序对用户有意义）。
func (r *Report) Finalize() {
	var s ReportSummary
	s.Total = len(r.Items)
	for _, it := range r.Items {
		if it.Valid {
			s.Valid++
		} else {
			s.Invalid++
		}
	}
	r.Summary = s
}
