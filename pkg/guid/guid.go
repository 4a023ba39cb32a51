package guid

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// Size 表示GUID的字节数
	Size = 16
	// UExample 是字符串GUID的示例
	UExample  = "01234567-89AB-CDEF-0123-456789ABCDEF"
	strFormat = "%02X%02X%02X%02X-%02X%02X-%02X%02X-%02X%02X-%02X%02X%02X%02X%02X%02X"
)

var (
	fields = [...]int{4, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1}
)

// GUID 表示SMBIOS 2.6+ 中的系统UUID
// 前三个字段按小端存储，其余字节按网络字节序存储
type GUID [Size]byte

func reverse(b []byte) {
	for i := 0; i < len(b)/2; i++ {
		other := len(b) - i - 1
		b[other], b[i] = b[i], b[other]
	}
}

// FromUUID 把规范(大端)UUID转换为SMBIOS字节布局
func FromUUID(id uuid.UUID) GUID {
	u := GUID(id)
	i := 0
	for _, fieldlen := range fields {
		reverse(u[i : i+fieldlen])
		i += fieldlen
	}
	return u
}

// Parse 解析GUID字符串
func Parse(s string) (*GUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("GUID字符串格式不正确，需要格式为\n%v\n，得到\n%v: %w",
			UExample, s, err)
	}
	u := FromUUID(id)
	return &u, nil
}

// UUID 返回规范字节序的UUID
func (u GUID) UUID() uuid.UUID {
	// 非指针接收器，所以不需要手动复制
	i := 0
	for _, fieldlen := range fields {
		reverse(u[i : i+fieldlen])
		i += fieldlen
	}
	return uuid.UUID(u)
}

func (u GUID) String() string {
	id := u.UUID()
	// 转换为[]interface{}以便于打印
	b := make([]interface{}, Size)
	for i := range id[:] {
		b[i] = id[i]
	}
	return fmt.Sprintf(strFormat, b...)
}
