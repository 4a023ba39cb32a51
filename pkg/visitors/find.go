package visitors

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/tinytoy-sec/SmbiosDecoder/pkg/guid"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/log"
	"github.com/tinytoy-sec/SmbiosDecoder/pkg/smbios"
)

// 用于筛选Find访问者匹配项的谓词
type FindPredicate = func(e smbios.Entry) bool

// 根据类型、句柄或名称查找结构
type Find struct {
	// 输入
	// 只有当此函数返回true时，结构才会出现在`Matches`切片中
	Predicate FindPredicate

	// 输出
	Matches []smbios.Entry

	// JSON写入此writer
	W io.Writer
}

// 包装Visit并执行一些设置和清理任务
func (v *Find) Run(t *smbios.Table) error {
	v.Matches = nil
	if err := t.Apply(v); err != nil {
		return err
	}
	if v.W != nil {
		views := make([]EntryView, 0, len(v.Matches))
		for _, m := range v.Matches {
			views = append(views, NewEntryView(m))
		}
		b, err := json.MarshalIndent(views, "", "\t")
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Fprintln(v.W, string(b))
	}
	return nil
}

func (v *Find) Visit(e smbios.Entry) error {
	if v.Predicate(e) {
		v.Matches = append(v.Matches, e)
	}
	return nil
}

// 只匹配结构类型的通用谓词
func FindTypePredicate(t smbios.StructureType) FindPredicate {
	return func(e smbios.Entry) bool {
		return e.Type() == t
	}
}

// 只匹配句柄的通用谓词
func FindHandlePredicate(handle uint16) FindPredicate {
	return func(e smbios.Entry) bool {
		return e.Header().Handle == handle
	}
}

// 按类型名称匹配的通用谓词，不区分大小写
func FindNamePredicate(r string) (FindPredicate, error) {
	ciRE, err := regexp.Compile("^(?i)(" + r + ")$")
	if err != nil {
		return nil, err
	}
	return func(e smbios.Entry) bool {
		return ciRE.MatchString(e.Type().String())
	}, nil
}

// 按系统UUID匹配类型1结构的谓词
func FindUUIDPredicate(g guid.GUID) FindPredicate {
	return func(e smbios.Entry) bool {
		s, ok := e.(*smbios.SystemInformation)
		if !ok {
			return false
		}
		id, ok := s.UUID()
		return ok && id == g.UUID()
	}
}

// 对现有谓词取逻辑非的通用谓词
func FindNotPredicate(predicate FindPredicate) FindPredicate {
	return func(e smbios.Entry) bool {
		return !predicate(e)
	}
}

// 对两个现有谓词取逻辑与的通用谓词
func FindAndPredicate(predicate1 FindPredicate, predicate2 FindPredicate) FindPredicate {
	return func(e smbios.Entry) bool {
		return predicate1(e) && predicate2(e)
	}
}

// 使用提供的谓词进行查找，如果不是恰好一个结果则报错
func FindExactlyOne(t *smbios.Table, pred FindPredicate) (smbios.Entry, error) {
	find := &Find{
		Predicate: pred,
	}
	if err := find.Run(t); err != nil {
		return nil, err
	}
	if mlen := len(find.Matches); mlen != 1 {
		return nil, fmt.Errorf("期望恰好一个匹配项，得到 %v", mlen)
	}
	return find.Matches[0], nil
}

// UUID参数按系统UUID匹配，数字参数按类型匹配，其它参数作为类型名称的正则表达式
func parseTypeOrName(arg string) (FindPredicate, error) {
	if g, err := guid.Parse(arg); err == nil {
		return FindUUIDPredicate(*g), nil
	}
	if n, err := strconv.ParseUint(arg, 0, 8); err == nil {
		return FindTypePredicate(smbios.StructureType(n)), nil
	}
	return FindNamePredicate(arg)
}

func init() {
	RegisterCLI("find", "按类型编号、类型名称或系统UUID查找结构", 1, func(args []string) (smbios.Visitor, error) {
		pred, err := parseTypeOrName(args[0])
		if err != nil {
			return nil, err
		}
		return &Find{
			Predicate: pred,
			W:         os.Stdout,
		}, nil
	})
}
