package region

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestImportHTML_Fixture(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "divisions.html"))
	if err != nil {
		t.Fatalf("读取 fixture 失败：%v", err)
	}
	defer f.Close()

	codes, err := ImportHTML(f)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}

	if len(codes) != 5 {
		t.Fatalf("期望 5 条（表头/坏行/空名称被跳过），实际 %d：%v", len(codes), codes)
	}
	if codes["110105"] != "北京市/市辖区/朝阳区" {
		t.Fatalf("单元格内空白未归一化：%q", codes["110105"])
	}
	if codes["440300"] != "广东省/深圳市" {
		t.Fatalf("440300 解析不对：%q", codes["440300"])
	}
	if _, ok := codes["440305"]; ok {
		t.Fatalf("空名称行不应被收录")
	}
}

func TestImportHTML_RoundTripThroughDirectory(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "divisions.html"))
	if err != nil {
		t.Fatalf("读取 fixture 失败：%v", err)
	}
	defer f.Close()

	codes, err := ImportHTML(f)
	if err != nil {
		t.Fatalf("不期望错误：%v", err)
	}

	d := FromMap(codes)
	if got := strings.Join(d.Resolve("110105"), " "); got != "北京市 市辖区 朝阳区" {
		t.Fatalf("导入结果无法正确解析：%q", got)
	}
}

func TestImportHTML_NoRows(t *testing.T) {
	_, err := ImportHTML(strings.NewReader("<html><body><p>没有表格</p></body></html>"))
	if !errors.Is(err, ErrNoRows) {
		t.Fatalf("期望 ErrNoRows，实际 %v", err)
	}
}
