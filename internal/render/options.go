package render

// Style 渲染风格
type Style int

const (
	StyleTree   Style = iota // 盒线连接符树状图
	StyleIndent              // 纯缩进
	StyleBullet              // 缩进 + 项目符号
)

func (s Style) String() string {
	switch s {
	case StyleTree:
		return "tree"
	case StyleIndent:
		return "indent"
	case StyleBullet:
		return "bullet"
	default:
		return "unknown"
	}
}

// ParseStyle 解析风格名称
func ParseStyle(name string) (Style, bool) {
	switch name {
	case "tree":
		return StyleTree, true
	case "indent":
		return StyleIndent, true
	case "bullet":
		return StyleBullet, true
	default:
		return StyleTree, false
	}
}

// ============================================================================
// 树状图连接符
//
// 示例输出：
//  ╿ Scene
//  ├─┮ Robot
//  │ ├─┮ Flange
//  │ │ └─┮ Gripper
//  │ │   └─╼ Object
//  │ └─╼ Camera
//  └─┮ Table
//    └─╼ Box
// ============================================================================

const (
	prefixRoot         = " ╿ "   // 根节点
	prefixMiddleBranch = " ├─┮ " // 内部节点，且不是最后一个兄弟
	prefixLastBranch   = " └─┮ " // 内部节点，且是最后一个兄弟
	prefixMiddleLeaf   = " ├─╼ " // 叶子，且不是最后一个兄弟
	prefixLastLeaf     = " └─╼ " // 叶子，且是最后一个兄弟
	prefixContinuation = " │"    // 祖先层尚有后续兄弟
	prefixGap          = "  "    // 祖先层已是最后一个兄弟
)

// Options 渲染选项
type Options struct {
	Style  Style  // 渲染风格
	Indent string // Indent/Bullet 风格每层的缩进
	Bullet string // Bullet 风格的项目符号
}

// DefaultOptions 返回默认渲染选项
func DefaultOptions() *Options {
	return &Options{
		Style:  StyleTree,
		Indent: "  ",
		Bullet: "* ",
	}
}
