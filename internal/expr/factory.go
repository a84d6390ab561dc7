package expr

// ============================================================================
// 便捷构造函数
//
// 用于测试和示例代码中以字面量方式嵌套构造表达式树，
// 构造失败时直接 panic，业务代码应使用 NewFloat
// ============================================================================

// MustFloat 创建浮点数字面量，非有限值时 panic
func MustFloat(value float64) *Float {
	f, err := NewFloat(value)
	if err != nil {
		panic(err)
	}
	return f
}
