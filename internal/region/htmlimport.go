package region

import (
	"errors"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var codeRE = regexp.MustCompile(`^[0-9]{6}$`)

// ErrNoRows 表示输入 HTML 中没有任何可识别的 代码/名称 表格行。
var ErrNoRows = errors.New("未在 HTML 中找到行政区划表格行")

// ImportHTML 从保存到本地的行政区划 HTML 页面提取 代码→名称 映射。
//
// 约束：
// - 纯函数：只依赖输入字节，不发起任何网络请求
// - 行的判定尽量宽松：任意 <tr>，前两个单元格分别是 6 位数字代码和
//   非空名称即可（统计局/民政部的页面都是这种两列结构）
// - 同一代码出现多次时保留最后一次（页面里偶有汇总行重复）
func ImportHTML(r io.Reader) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	codes := make(map[string]string, 256)
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		code := strings.TrimSpace(cells.Eq(0).Text())
		name := normSpace(cells.Eq(1).Text())
		if !codeRE.MatchString(code) || name == "" {
			return
		}
		codes[code] = name
	})

	if len(codes) == 0 {
		return nil, ErrNoRows
	}
	return codes, nil
}

// normSpace 压掉名称里的空白（页面单元格常混入换行与全角空格）。
func normSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
