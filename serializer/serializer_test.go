package serializer

import (
	"testing"

	"github.com/titpetric/sassgo/css"
	"github.com/titpetric/sassgo/selector"
)

func TestRenderDeclarationExpanded(t *testing.T) {
	sheet := css.NewStylesheet()
	rule := sheet.AddChild(sheet.Root, css.Node{Kind: css.KindStyleRule, Selector: mustSelectorList(t, ".a")})
	sheet.AddChild(rule, css.Node{Kind: css.KindDeclaration, Property: "color", DeclValue: "red"})

	got := New(Expanded, 2).Render(sheet)
	want := ".a {\n  color: red;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderDeclarationCompressed(t *testing.T) {
	sheet := css.NewStylesheet()
	rule := sheet.AddChild(sheet.Root, css.Node{Kind: css.KindStyleRule, Selector: mustSelectorList(t, ".a")})
	sheet.AddChild(rule, css.Node{Kind: css.KindDeclaration, Property: "color", DeclValue: "red"})

	got := New(Compressed, 2).Render(sheet)
	want := ".a {color: red;}"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderBlankLineBetweenTopLevelRules(t *testing.T) {
	sheet := css.NewStylesheet()
	a := sheet.AddChild(sheet.Root, css.Node{Kind: css.KindStyleRule, Selector: mustSelectorList(t, ".a")})
	sheet.AddChild(a, css.Node{Kind: css.KindDeclaration, Property: "color", DeclValue: "red"})
	b := sheet.AddChild(sheet.Root, css.Node{Kind: css.KindStyleRule, Selector: mustSelectorList(t, ".b")})
	sheet.AddChild(b, css.Node{Kind: css.KindDeclaration, Property: "color", DeclValue: "blue"})

	got := New(Expanded, 2).Render(sheet)
	want := ".a {\n  color: red;\n}\n\n.b {\n  color: blue;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderNestedIndent(t *testing.T) {
	sheet := css.NewStylesheet()
	media := sheet.AddChild(sheet.Root, css.Node{Kind: css.KindMediaRule, MediaQuery: "screen"})
	rule := sheet.AddChild(media, css.Node{Kind: css.KindStyleRule, Selector: mustSelectorList(t, ".a")})
	sheet.AddChild(rule, css.Node{Kind: css.KindDeclaration, Property: "color", DeclValue: "red"})

	got := New(Expanded, 2).Render(sheet)
	want := "@media screen {\n  .a {\n    color: red;\n  }\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderChildlessAtRule(t *testing.T) {
	sheet := css.NewStylesheet()
	sheet.AddChild(sheet.Root, css.Node{Kind: css.KindAtRule, Name: "charset", Value: `"utf-8"`, Childless: true})

	got := New(Expanded, 2).Render(sheet)
	want := "@charset \"utf-8\";\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderComment(t *testing.T) {
	sheet := css.NewStylesheet()
	sheet.AddChild(sheet.Root, css.Node{Kind: css.KindComment, Text: "/* hi */"})

	got := New(Expanded, 2).Render(sheet)
	want := "/* hi */\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderImportWithMedia(t *testing.T) {
	sheet := css.NewStylesheet()
	sheet.AddChild(sheet.Root, css.Node{Kind: css.KindImport, URL: `"a.css"`, ImportMedia: "screen"})

	got := New(Expanded, 2).Render(sheet)
	want := "@import \"a.css\" screen;\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderCustomIndentSize(t *testing.T) {
	sheet := css.NewStylesheet()
	rule := sheet.AddChild(sheet.Root, css.Node{Kind: css.KindStyleRule, Selector: mustSelectorList(t, ".a")})
	sheet.AddChild(rule, css.Node{Kind: css.KindDeclaration, Property: "color", DeclValue: "red"})

	got := New(Expanded, 4).Render(sheet)
	want := ".a {\n    color: red;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func mustSelectorList(t *testing.T, text string) *selector.List {
	t.Helper()
	list, err := selector.Parse(text)
	if err != nil {
		t.Fatalf("selector.Parse(%q) error: %v", text, err)
	}
	return list
}
