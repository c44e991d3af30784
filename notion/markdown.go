package notion

import (
	"fmt"
	"strings"

	"github.com/jomei/notionapi"
)

// PlainText concatenates the plain-text fragments of rich-text runs in order,
// with no separator. An empty run sequence yields "".
func PlainText(runs []notionapi.RichText) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(run.PlainText)
	}
	return b.String()
}

// RenderMarkdown renders top-level page blocks as Markdown. Block types
// without a Markdown equivalent are skipped.
func RenderMarkdown(blocks []notionapi.Block) string {
	var parts []string
	numbered := 0

	for _, block := range blocks {
		line, ok := renderBlock(block, &numbered)
		if !ok {
			continue
		}
		parts = append(parts, line)
	}

	return strings.Join(parts, "\n\n")
}

func renderBlock(block notionapi.Block, numbered *int) (string, bool) {
	// consecutive numbered list items keep counting; anything else resets
	if block.GetType() != notionapi.BlockTypeNumberedListItem {
		*numbered = 0
	}

	switch b := block.(type) {
	case *notionapi.ParagraphBlock:
		return renderRichText(b.Paragraph.RichText), true
	case *notionapi.Heading1Block:
		return "# " + renderRichText(b.Heading1.RichText), true
	case *notionapi.Heading2Block:
		return "## " + renderRichText(b.Heading2.RichText), true
	case *notionapi.Heading3Block:
		return "### " + renderRichText(b.Heading3.RichText), true
	case *notionapi.BulletedListItemBlock:
		return "- " + renderRichText(b.BulletedListItem.RichText), true
	case *notionapi.NumberedListItemBlock:
		*numbered++
		return fmt.Sprintf("%d. %s", *numbered, renderRichText(b.NumberedListItem.RichText)), true
	case *notionapi.ToDoBlock:
		marker := "- [ ] "
		if b.ToDo.Checked {
			marker = "- [x] "
		}
		return marker + renderRichText(b.ToDo.RichText), true
	case *notionapi.QuoteBlock:
		return "> " + renderRichText(b.Quote.RichText), true
	case *notionapi.CodeBlock:
		return "```" + b.Code.Language + "\n" + PlainText(b.Code.RichText) + "\n```", true
	case *notionapi.ImageBlock:
		url := ImageURL(&b.Image)
		if url == "" {
			return "", false
		}
		return fmt.Sprintf("![%s](%s)", PlainText(b.Image.Caption), url), true
	case *notionapi.BookmarkBlock:
		return fmt.Sprintf("[%s](%s)", b.Bookmark.URL, b.Bookmark.URL), true
	case *notionapi.DividerBlock:
		return "---", true
	default:
		return "", false
	}
}

func renderRichText(runs []notionapi.RichText) string {
	var b strings.Builder
	for _, run := range runs {
		b.WriteString(renderRun(run))
	}
	return b.String()
}

func renderRun(run notionapi.RichText) string {
	text := run.PlainText
	if ann := run.Annotations; ann != nil && text != "" {
		if ann.Code {
			text = "`" + text + "`"
		}
		if ann.Bold {
			text = "**" + text + "**"
		}
		if ann.Italic {
			text = "_" + text + "_"
		}
		if ann.Strikethrough {
			text = "~~" + text + "~~"
		}
	}
	if run.Href != "" {
		text = "[" + text + "](" + run.Href + ")"
	}
	return text
}

// ImageURL resolves a Notion image or cover to its URL, whether Notion hosts
// the file or links out to an external one.
func ImageURL(image *notionapi.Image) string {
	if image == nil {
		return ""
	}
	if image.External != nil {
		return image.External.URL
	}
	if image.File != nil {
		return image.File.URL
	}
	return ""
}
