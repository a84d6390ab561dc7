// Package errors 提供 arbor 树模型的错误类型
//
// 非法的树在构造时立即失败，遍历期间不再做防御性检查，
// 因此打印访问者没有失败路径，求值只会因除零失败。
package errors

// ============================================================================
// 错误码
// ============================================================================

const (
	// T0001-T0099: 构造错误
	T0001 = "T0001" // 内部节点没有子节点
	T0002 = "T0002" // 浮点值不是有限数
	T0003 = "T0003" // 子节点为 nil

	// E0001-E0099: 求值错误
	E0001 = "E0001" // 除零
)

// ============================================================================
// 错误类型
// ============================================================================

// ConstructionError 构造期错误
type ConstructionError struct {
	Code    string // 错误码
	Message string // 错误描述
}

func (e *ConstructionError) Error() string {
	return "[" + e.Code + "] " + e.Message
}

// NewConstructionError 创建构造期错误
func NewConstructionError(code, message string) *ConstructionError {
	return &ConstructionError{Code: code, Message: message}
}

// DivisionByZeroError 除零错误
// Expr 是出错的 Divide 节点的中缀表示
type DivisionByZeroError struct {
	Expr string
}

func (e *DivisionByZeroError) Error() string {
	return "[" + E0001 + "] division by zero in " + e.Expr
}
