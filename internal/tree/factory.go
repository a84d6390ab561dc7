package tree

// ============================================================================
// 便捷构造函数
//
// 用于测试和示例代码中以字面量方式嵌套构造整棵树，
// 构造失败时直接 panic，业务代码应使用 NewNode
// ============================================================================

// MustNode 创建内部节点，构造失败时 panic
func MustNode(name string, children ...NodeOrLeaf) *Node {
	n, err := NewNode(name, children...)
	if err != nil {
		panic(err)
	}
	return n
}
