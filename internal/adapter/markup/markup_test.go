package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `@root Handbook
@section Getting Started
@text Read this first.
@list
@item Home - @link home
@item Plain entry
@end
@section "Deep Dive"
@image Logo - logo.png
@end
@end
@separator
@table Prices
@thead Item, Cost
@trow Tea, 3
@end
`

func TestParse(t *testing.T) {
	elements, warnings := Parse(page, nil)
	require.Empty(t, warnings)

	tags := make([]string, 0, len(elements))
	for _, e := range elements {
		tags = append(tags, e.Tag)
	}
	assert.Equal(t, []string{
		"root", "section", "text", "list", "item", "item", "end",
		"section", "image", "end", "end", "separator",
		"table", "thead", "trow", "end",
	}, tags)

	assert.Equal(t, "Handbook", elements[0].Text())
	assert.Equal(t, "Getting Started", elements[1].Name)
	assert.Equal(t, 2, elements[1].Line)

	item := elements[4]
	assert.Equal(t, "Home", item.Name)
	assert.Equal(t, "@link home", item.Content)

	image := elements[8]
	assert.Equal(t, "Logo", image.Name)
	assert.Equal(t, "logo.png", image.Content)
}

func TestParse_TypeAndDefault(t *testing.T) {
	elements, _ := Parse("@item {String} greeting = hello - What to say\n", nil)
	require.Len(t, elements, 1)

	e := elements[0]
	assert.Equal(t, "String", e.Type)
	assert.Equal(t, "greeting", e.Name)
	assert.Equal(t, "hello", e.Default)
	assert.Equal(t, "What to say", e.Content)
}

func TestParse_UnknownTag(t *testing.T) {
	elements, warnings := Parse("@root Doc\n\n@bogus thing\n@text ok\n", nil)

	require.Len(t, warnings, 1)
	assert.Equal(t, 3, warnings[0].Line)
	assert.Equal(t, "bogus", warnings[0].Tag)
	assert.Equal(t, `error on line 3: Unknown tag 'bogus' in "@bogus thing".`, warnings[0].String())
	assert.Len(t, elements, 2)
}

func TestParse_CustomVocabulary(t *testing.T) {
	elements, warnings := Parse("@note hi\n@text skipped\n", []string{"note"})

	require.Len(t, elements, 1)
	assert.Equal(t, "note", elements[0].Tag)
	require.Len(t, warnings, 1)
	assert.Equal(t, "text", warnings[0].Tag)
}

func TestRender(t *testing.T) {
	out, warnings := Render(page)
	require.Empty(t, warnings)

	assert.True(t, strings.HasPrefix(out, "<html>\n<head>\n  <title>Handbook</title>\n</head>\n<body>\n"))
	assert.True(t, strings.HasSuffix(out, "</body>\n</html>\n"))

	assert.Contains(t, out, `<h2 id="Getting_Started">Getting Started</h2>`)
	assert.Contains(t, out, `<h3 id="Deep_Dive">Deep Dive</h3>`)
	assert.Contains(t, out, `<li><a href="#home">Home</a></li>`)
	assert.Contains(t, out, "<li>Plain entry</li>")
	assert.Contains(t, out, `<img src="logo.png" alt="Logo">`)
	assert.Contains(t, out, "<hr>")
	assert.Contains(t, out, "<h3>Prices</h3>")
	assert.Contains(t, out, "<th>Item</th>")
	assert.Contains(t, out, "<td>3</td>")

	toc := strings.Index(out, "<h2>Table of Contents</h2>")
	require.NotEqual(t, -1, toc)
	assert.Less(t, strings.Index(out, "<body>"), toc)
	assert.Less(t, toc, strings.Index(out, "<section>"))
	assert.Contains(t, out, `<li><a href="#Deep_Dive">Deep Dive</a></li>`)
}

func TestRender_ClosesOpenElements(t *testing.T) {
	out, _ := Render("@section One\n@list\n@item a\n")

	assert.Equal(t, 2, strings.Count(out, "</ul>"))
	assert.Contains(t, out, "</section>")
	assert.NotContains(t, out, "<html>")
	assert.True(t, strings.HasPrefix(out, "<h2>Table of Contents</h2>"))
}

func TestRender_StrayEnd(t *testing.T) {
	out, _ := Render("@end\n@text hi\n")
	assert.Equal(t, "hi\n", out)
}

func TestRender_Warnings(t *testing.T) {
	out, warnings := Render("@text a <b>\n@nope x\n")

	require.Len(t, warnings, 1)
	assert.Contains(t, out, "a &lt;b&gt;")
	assert.True(t, strings.HasSuffix(out, "error on line 2: Unknown tag 'nope' in \"@nope x\".\n"))
}
