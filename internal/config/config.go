package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// ErrCodeInvalid 表示配置文件无法读取/解析，或字段不合法。
	ErrCodeInvalid = "config_invalid"
)

const (
	// DefaultRegionFile 是行政区划代码文件的默认位置（相对 cwd）。
	DefaultRegionFile = "region_codes.txt"
	// DateLayout 是 --date 与配置文件 date 字段的格式。
	DateLayout = "2006-01-02"
)

// CLIArgs 只包含 CLI 暴露的两项入口，并保留“是否显式指定”的信息，
// 保证覆盖优先级可实现（CLI > 配置文件 > 默认）。
type CLIArgs struct {
	RegionFile    string
	RegionFileSet bool

	Date    string
	DateSet bool
}

// FileConfig 对应 sfzinfo.json 的解析结构。文件整体可选。
type FileConfig struct {
	RegionFile string `json:"region_file"`
	Date       string `json:"date"`
}

// EffectiveConfig 是合并后的最终配置（实现层直接消费，不再做二次默认判断）。
type EffectiveConfig struct {
	RegionFile string
	// RefDate 是计算周岁的参考日期；未指定时为当天。
	RefDate time.Time
}

// Error 是配置阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s：配置无效（%s）：%v", e.Code, e.Path, e.Err)
	}
	return fmt.Sprintf("%s：配置无效（%s）", e.Code, e.Path)
}

func (e *Error) Unwrap() error { return e.Err }

// LoadEffective 读取 <cwd>/sfzinfo.json（可选）并与 CLI 参数合并。
//
// 覆盖优先级（固定）：
// - region_file：CLI --region-file > config > 默认 region_codes.txt
// - date：CLI --date > config > 当天（now）
func LoadEffective(cwd string, cli CLIArgs, now time.Time) (EffectiveConfig, error) {
	cfgPath := filepath.Join(cwd, "sfzinfo.json")

	var fc FileConfig
	b, err := os.ReadFile(cfgPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(b, &fc); err != nil {
			return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
		}
	case errors.Is(err, os.ErrNotExist):
		// 配置文件可选，不存在不是错误。
	default:
		return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: err}
	}

	regionFile := DefaultRegionFile
	if cli.RegionFileSet {
		regionFile = cli.RegionFile
	} else if strings.TrimSpace(fc.RegionFile) != "" {
		regionFile = fc.RegionFile
	}

	dateText := ""
	if cli.DateSet {
		dateText = cli.Date
	} else if strings.TrimSpace(fc.Date) != "" {
		dateText = fc.Date
	}

	refDate := now
	if strings.TrimSpace(dateText) != "" {
		d, err := time.Parse(DateLayout, strings.TrimSpace(dateText))
		if err != nil {
			return EffectiveConfig{}, &Error{Code: ErrCodeInvalid, Path: cfgPath, Err: fmt.Errorf("date 必须是 YYYY-MM-DD：%q", dateText)}
		}
		refDate = d
	}

	return EffectiveConfig{RegionFile: regionFile, RefDate: refDate}, nil
}
