// Package types 定义 SizedType 类型描述符
//
// SizedType 不是 AST 节点，而是由 Cast、Sizeof、Offsetof、SubprogArg、
// Subprog 和 VarDeclStatement 引用的值形状描述：记录、枚举、指针等。
package types

import (
	"fmt"
	"strings"
)

// ============================================================================
// 类型种类
// ============================================================================

// TypeKind 类型种类
type TypeKind int

const (
	TypeNone    TypeKind = iota // 尚未确定的类型
	TypeVoid                    // 无返回值
	TypeInteger                 // 整数
	TypeString                  // 字符串
	TypeRecord                  // 记录 (struct / union)
	TypeEnum                    // 枚举
	TypePointer                 // 指针
)

var kindNames = [...]string{
	TypeNone:    "none",
	TypeVoid:    "void",
	TypeInteger: "int",
	TypeString:  "string",
	TypeRecord:  "record",
	TypeEnum:    "enum",
	TypePointer: "pointer",
}

func (k TypeKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TypeKind(%d)", int(k))
}

// ============================================================================
// 记录布局
// ============================================================================

// Field 记录字段
type Field struct {
	Name   string
	Type   SizedType
	Offset int // 字节偏移量
}

// Record 记录字段布局
//
// 布局由后续的类型解析阶段填充，本层只通过名字引用。
type Record struct {
	Size   int // 字节大小
	Fields []Field
}

// GetField 按名字查找字段
func (r *Record) GetField(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ============================================================================
// SizedType
// ============================================================================

// SizedType 可组合的类型描述符
type SizedType struct {
	Kind     TypeKind
	Bits     int        // 整数 / 枚举的位宽
	Size     int        // 字符串容量（字节）
	Signed   bool       // 整数是否有符号
	Name     string     // 记录或枚举名
	Elem     *SizedType // 指针指向的类型
	layout   *Record    // 记录布局，未解析时为 nil
	resolved bool
}

// CreateNone 创建未确定类型
func CreateNone() SizedType {
	return SizedType{Kind: TypeNone}
}

// CreateVoid 创建 void 类型
func CreateVoid() SizedType {
	return SizedType{Kind: TypeVoid}
}

// CreateInteger 创建整数类型
func CreateInteger(bits int, signed bool) SizedType {
	return SizedType{Kind: TypeInteger, Bits: bits, Signed: signed}
}

// CreateUInt64 创建 uint64 类型
func CreateUInt64() SizedType { return CreateInteger(64, false) }

// CreateInt64 创建 int64 类型
func CreateInt64() SizedType { return CreateInteger(64, true) }

// CreateString 创建定长字符串类型
func CreateString(size int) SizedType {
	return SizedType{Kind: TypeString, Size: size}
}

// CreateRecord 创建记录类型，layout 可以为 nil（尚未解析）
func CreateRecord(name string, layout *Record) SizedType {
	return SizedType{Kind: TypeRecord, Name: name, layout: layout, resolved: layout != nil}
}

// CreateEnum 创建枚举类型
func CreateEnum(bits int, name string) SizedType {
	return SizedType{Kind: TypeEnum, Bits: bits, Name: name}
}

// CreatePointer 创建指向 elem 的指针类型
func CreatePointer(elem SizedType) SizedType {
	e := elem
	return SizedType{Kind: TypePointer, Bits: 64, Elem: &e}
}

func (t SizedType) IsNone() bool    { return t.Kind == TypeNone }
func (t SizedType) IsRecord() bool  { return t.Kind == TypeRecord }
func (t SizedType) IsEnum() bool    { return t.Kind == TypeEnum }
func (t SizedType) IsPointer() bool { return t.Kind == TypePointer }

// PointerLevel 返回指针嵌套层数
func (t SizedType) PointerLevel() int {
	level := 0
	for cur := t; cur.Kind == TypePointer; cur = *cur.Elem {
		level++
	}
	return level
}

// Pointee 返回指针指向的类型
func (t SizedType) Pointee() SizedType {
	if t.Kind != TypePointer || t.Elem == nil {
		return CreateNone()
	}
	return *t.Elem
}

// Record 返回记录布局；未解析时 ok 为 false
func (t SizedType) Record() (*Record, bool) {
	return t.layout, t.resolved
}

// ResolveRecord 返回绑定了布局的记录类型副本
func (t SizedType) ResolveRecord(layout *Record) SizedType {
	if t.Kind != TypeRecord {
		return t
	}
	t.layout = layout
	t.resolved = layout != nil
	return t
}

// Equal 比较两个类型的形状是否相同（不比较记录布局）
func (t SizedType) Equal(o SizedType) bool {
	if t.Kind != o.Kind || t.Bits != o.Bits || t.Size != o.Size || t.Signed != o.Signed || t.Name != o.Name {
		return false
	}
	if t.Kind == TypePointer {
		return t.Pointee().Equal(o.Pointee())
	}
	return true
}

// String 返回类型的字符串表示
func (t SizedType) String() string {
	switch t.Kind {
	case TypeNone:
		return "none"
	case TypeVoid:
		return "void"
	case TypeInteger:
		if t.Signed {
			return fmt.Sprintf("int%d", t.Bits)
		}
		return fmt.Sprintf("uint%d", t.Bits)
	case TypeString:
		return fmt.Sprintf("string[%d]", t.Size)
	case TypeRecord:
		return t.Name
	case TypeEnum:
		return fmt.Sprintf("enum %s", t.Name)
	case TypePointer:
		return t.Pointee().String() + " *"
	}
	return t.Kind.String()
}

// ============================================================================
// 类型描述符构建
// ============================================================================

// EnumPrefix 标识符中的枚举前缀
const EnumPrefix = "enum "

// DefaultEnumBits 枚举默认位宽
//
// 枚举一律提升为 64 位，与实际取值范围无关。
const DefaultEnumBits = 64

// Builder 从标识符构建类型描述符
type Builder struct {
	EnumBits int // 枚举位宽，<= 0 时使用 DefaultEnumBits
}

// DefaultBuilder 默认构建器
var DefaultBuilder = Builder{EnumBits: DefaultEnumBits}

func (b Builder) enumBits() int {
	if b.EnumBits <= 0 {
		return DefaultEnumBits
	}
	return b.EnumBits
}

// IdentToRecord 创建名为 ident 的记录类型，并包裹 pointerLevel 层指针
func (b Builder) IdentToRecord(ident string, pointerLevel int) SizedType {
	result := CreateRecord(ident, nil)
	for i := 0; i < pointerLevel; i++ {
		result = CreatePointer(result)
	}
	return result
}

// IdentToSizedType 将标识符转换为类型描述符
//
// "enum " 开头的标识符生成枚举类型，其余生成值记录类型。
func (b Builder) IdentToSizedType(ident string) SizedType {
	if name, ok := strings.CutPrefix(ident, EnumPrefix); ok {
		return CreateEnum(b.enumBits(), name)
	}
	return b.IdentToRecord(ident, 0)
}

// IdentToRecord 使用默认构建器
func IdentToRecord(ident string, pointerLevel int) SizedType {
	return DefaultBuilder.IdentToRecord(ident, pointerLevel)
}

// IdentToSizedType 使用默认构建器
func IdentToSizedType(ident string) SizedType {
	return DefaultBuilder.IdentToSizedType(ident)
}
