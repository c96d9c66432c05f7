package decorify

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/riverfjs/decorify-go/internal/htmlpost"
	"github.com/riverfjs/decorify-go/internal/shortcode"
	"github.com/riverfjs/decorify-go/internal/wikilink"
)

// readingMarkdown goldmark 实例配置：GFM + wikilink 内联扩展
var readingMarkdown = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,      // GitHub Flavored Markdown
		wikilink.Extension, // [[target|display]] 内联链接
	),
}

// MarkerClass is the CSS class of marker spans inserted into rendered HTML.
const MarkerClass = htmlpost.MarkerClass

// Render 阅读模式完整管道：markdown → HTML → 装饰
//
// 步骤：
//  1. goldmark 渲染 markdown，[[...]] 通过内联扩展变成带 data-target
//     属性的 internal-link 锚点
//  2. ProcessFragment 对产出的 HTML 做装饰后处理
//
// 编辑视图用 Build() 在原始文本上重建装饰；阅读视图经过这条管道，
// 两边共享同一套 shortcode 查找表和路径分类规则。
//
// 参数：
//   - markdown: 原始 markdown 文本
//   - opts: 构建选项；链接解析上下文由宿主绑定进 WithResolver 的闭包
//
// 返回：
//   - string: 装饰后的 HTML 片段
//   - error: 错误信息
func Render(markdown string, opts ...Option) (string, error) {
	md := goldmark.New(readingMarkdown...)

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}

	return ProcessFragment(buf.String(), opts...)
}

// ProcessFragment 对一个渲染完成的 HTML 片段做装饰后处理
//
// 文本节点中的已知 shortcode token 被替换为符号（code/pre 等元素除外），
// 带 data-target 属性的锚点在解析、分类命中后追加 marker span。
// 对同一片段重复处理是幂等的：已有 marker 的锚点不会再次追加。
//
// 参数：
//   - fragment: HTML 片段
//   - opts: 构建选项
//
// 返回：
//   - string: 处理后的 HTML 片段
//   - error: 错误信息
func ProcessFragment(fragment string, opts ...Option) (string, error) {
	options := applyOptions(opts...)

	return htmlpost.Process(fragment, htmlpost.Config{
		Shortcodes: shortcode.New(options.Shortcodes),
		Rules:      options.Rules,
		Resolve:    options.Resolve,
		Side:       options.MarkerSide,
		Logger:     Logger,
	})
}
