package expr

import (
	"strconv"
	"strings"
)

// ValueType 求值结果的类型标签
type ValueType byte

const (
	ValInt   ValueType = iota // 整数
	ValFloat                  // 浮点数
)

// Value 求值结果
// 整数运算保持整数，出现浮点操作数时提升为浮点
type Value struct {
	Type ValueType
	Data interface{}
}

// IntValue 创建整数值
func IntValue(n int64) Value {
	return Value{Type: ValInt, Data: n}
}

// FloatValue 创建浮点数值
func FloatValue(f float64) Value {
	return Value{Type: ValFloat, Data: f}
}

// IsInt 是否整数
func (v Value) IsInt() bool { return v.Type == ValInt }

// IsFloat 是否浮点数
func (v Value) IsFloat() bool { return v.Type == ValFloat }

// AsInt 转换为整数，浮点数截断
func (v Value) AsInt() int64 {
	switch v.Type {
	case ValInt:
		return v.Data.(int64)
	case ValFloat:
		return int64(v.Data.(float64))
	default:
		return 0
	}
}

// AsFloat 转换为浮点数
func (v Value) AsFloat() float64 {
	switch v.Type {
	case ValFloat:
		return v.Data.(float64)
	case ValInt:
		return float64(v.Data.(int64))
	default:
		return 0
	}
}

// String 返回字符串表示
// 浮点数使用规范文本：小数点两侧至少各有一位数字
func (v Value) String() string {
	switch v.Type {
	case ValInt:
		return strconv.FormatInt(v.Data.(int64), 10)
	case ValFloat:
		return formatFloat(v.Data.(float64))
	default:
		return "unknown"
	}
}

// formatFloat 返回浮点数的规范文本
// 整数值的浮点数补上 ".0"（5.0 而不是 5），指数形式原样保留
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
