package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/wrenhold/sfzinfo/internal/app/parse"
	"github.com/wrenhold/sfzinfo/internal/config"
	"github.com/wrenhold/sfzinfo/internal/domain"
	"github.com/wrenhold/sfzinfo/internal/infra/fsx"
	"github.com/wrenhold/sfzinfo/internal/region"
)

func main() {
	args := os.Args[1:]

	if len(args) > 0 && isHelp(args[0]) {
		printUsage()
		return
	}

	// 无参数时进入交互模式（与 repl 子命令等价）。
	cmd := "repl"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd = args[0]
		args = args[1:]
	}

	switch cmd {
	case "repl":
		os.Exit(replCmd(args))
	case "parse":
		os.Exit(parseCmd(args))
	case "convert":
		os.Exit(convertCmd(args))
	default:
		fmt.Fprintf(os.Stderr, "未知命令：%q\n\n", cmd)
		printUsage()
		os.Exit(2)
	}
}

func replCmd(args []string) int {
	cli, rest, err := parseCommonArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "参数错误：%v\n\n", err)
		printUsage()
		return 2
	}
	if len(rest) != 0 {
		fmt.Fprintf(os.Stderr, "repl 不接受位置参数：%v\n", rest)
		return 2
	}

	dir, eff, ok := setup(cli)
	if !ok {
		return 1
	}

	runREPL(os.Stdin, os.Stdout, dir, eff.RefDate)
	return 0
}

func parseCmd(args []string) int {
	cli, rest, err := parseCommonArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "参数错误：%v\n\n", err)
		printUsage()
		return 2
	}
	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "parse 需要至少一个身份证号码")
		return 2
	}

	dir, eff, ok := setup(cli)
	if !ok {
		return 1
	}

	rr := domain.Report{Items: make([]domain.Info, 0, len(rest))}
	for _, raw := range rest {
		rr.Items = append(rr.Items, parse.Parse(raw, dir, eff.RefDate))
	}
	rr.Finalize()

	b, err := json.MarshalIndent(rr, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "序列化结果失败：%v\n", err)
		return 1
	}
	fmt.Println(string(b))

	if rr.Summary.Invalid > 0 {
		return 1
	}
	return 0
}

func convertCmd(args []string) int {
	_, rest, err := parseCommonArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "参数错误：%v\n\n", err)
		printUsage()
		return 2
	}
	if len(rest) != 2 {
		fmt.Fprintln(os.Stderr, "用法：sfzinfo convert <输入.html> <输出.txt>")
		return 2
	}

	in, out := rest[0], rest[1]
	f, err := os.Open(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "打开输入文件失败：%v\n", err)
		return 1
	}
	defer f.Close()

	codes, err := region.ImportHTML(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "解析 HTML 失败：%v\n", err)
		return 1
	}

	if err := fsx.WriteFileAtomicReplace(filepath.Dir(out), filepath.Base(out), flatten(codes)); err != nil {
		fmt.Fprintf(os.Stderr, "写入输出文件失败：%v\n", err)
		return 1
	}

	fmt.Fprintf(os.Stderr, "已写入 %d 条记录到 %s\n", len(codes), out)
	return 0
}

// flatten 把代码映射序列化为按代码排序的两列平面格式。
func flatten(codes map[string]string) []byte {
	keys := make([]string, 0, len(codes))
	for k := range codes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteByte(' ')
		b.WriteString(codes[k])
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// setup 加载配置与行政区划代码库。代码库缺失只提示一次并继续
// （解析管线按兜底文本降级），配置错误则终止。
func setup(cli config.CLIArgs) (region.Directory, config.EffectiveConfig, bool) {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "读取当前目录失败：%v\n", err)
		return region.Empty(), config.EffectiveConfig{}, false
	}

	eff, err := config.LoadEffective(cwd, cli, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return region.Empty(), config.EffectiveConfig{}, false
	}

	dir, err := region.Load(eff.RegionFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "警告：行政区划数据文件不可用（%v），地址将显示为 %s\n", err, region.UnknownProvince)
	}
	return dir, eff, true
}

func parseCommonArgs(args []string) (config.CLIArgs, []string, error) {
	var cli config.CLIArgs
	rest := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--region-file":
			if i+1 >= len(args) {
				return config.CLIArgs{}, nil, fmt.Errorf("--region-file 需要一个值")
			}
			i++
			cli.RegionFile = args[i]
			cli.RegionFileSet = true
		case strings.HasPrefix(a, "--region-file="):
			cli.RegionFile = strings.TrimPrefix(a, "--region-file=")
			cli.RegionFileSet = true
		case a == "--date":
			if i+1 >= len(args) {
				return config.CLIArgs{}, nil, fmt.Errorf("--date 需要一个值")
			}
			i++
			cli.Date = args[i]
			cli.DateSet = true
		case strings.HasPrefix(a, "--date="):
			cli.Date = strings.TrimPrefix(a, "--date=")
			cli.DateSet = true
		case strings.HasPrefix(a, "-"):
			return config.CLIArgs{}, nil, fmt.Errorf("未知参数：%q", a)
		default:
			rest = append(rest, a)
		}
	}
	return cli, rest, nil
}

func isHelp(s string) bool {
	switch s {
	case "-h", "--help", "help":
		return true
	}
	return false
}

func printUsage() {
	fmt.Fprint(os.Stderr, usageText())
}

func usageText() string {
	return strings.Join([]string{
		"sfzinfo — 身份证信息解析工具",
		"",
		"用法：",
		"  sfzinfo [repl] [参数]             交互式解析（输入 q 退出）",
		"  sfzinfo parse <号码>... [参数]    批量解析，stdout 输出 JSON 报告",
		"  sfzinfo convert <输入.html> <输出.txt>",
		"                                    把保存的行政区划 HTML 页面转为平面代码表",
		"",
		"参数：",
		"  --region-file PATH   行政区划代码文件（默认 region_codes.txt）",
		"  --date YYYY-MM-DD    计算周岁的参考日期（默认今天）",
		"",
		"可选配置文件 <cwd>/sfzinfo.json：{\"region_file\": \"...\", \"date\": \"YYYY-MM-DD\"}",
		"",
	}, "\n")
}
