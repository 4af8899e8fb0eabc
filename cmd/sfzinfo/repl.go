package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wrenhold/sfzinfo/internal/app/parse"
	"github.com/wrenhold/sfzinfo/internal/domain"
	"github.com/wrenhold/sfzinfo/internal/region"
)

const divider = "========================================"

// runREPL 是交互式外壳：逐行读入号码并打印解析结果，输入 q 退出。
//
// 读写端都通过参数注入，方便测试；解析核心不感知交互逻辑。
func runREPL(r io.Reader, w io.Writer, dir region.Directory, ref time.Time) {
	fmt.Fprintln(w, "身份证信息解析系统（含行政区划）")
	fmt.Fprintln(w, divider)

	sc := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "\n请输入身份证号码（输入 q 退出）: ")
		if !sc.Scan() {
			fmt.Fprintln(w)
			return
		}
		input := strings.TrimSpace(sc.Text())
		if strings.EqualFold(input, "q") {
			return
		}
		if input == "" {
			continue
		}

		printInfo(w, parse.Parse(input, dir, ref))
		fmt.Fprintln(w, divider)
	}
}

// printInfo 按原始外壳的版式输出：有效时逐项列出，无效时只给错误原因。
func printInfo(w io.Writer, info domain.Info) {
	if !info.Valid {
		fmt.Fprintln(w, "\n[无效身份证]")
		fmt.Fprintf(w, "• 错误原因：%s\n", info.ErrorMsg)
		return
	}

	fmt.Fprintln(w, "\n[有效身份证信息]")
	fmt.Fprintf(w, "• 号码：%s\n", info.ID)
	fmt.Fprintf(w, "• 地址：%s\n", info.Address)
	fmt.Fprintf(w, "• 出生日期：%s\n", info.BirthDate)
	fmt.Fprintf(w, "• 年龄：%d\n", info.Age)
	fmt.Fprintf(w, "• 性别：%s\n", info.Gender)
	fmt.Fprintf(w, "• 校验码：%s\n", info.CheckChar)
	fmt.Fprintf(w, "• 星座：%s\n", info.Zodiac)
	fmt.Fprintf(w, "• 生肖：%s\n", info.Animal)
	fmt.Fprintf(w, "• 出生季节：%s\n", info.Season)
}
