package sassgo

import (
	"testing"
	"testing/fstest"

	"github.com/titpetric/sassgo/importer"
	"github.com/titpetric/sassgo/parser"
	"github.com/titpetric/sassgo/serializer"
	"github.com/titpetric/sassgo/value"
)

func TestCompileSimpleDeclaration(t *testing.T) {
	sheet, err := parser.Parse(".a { color: red; }", "input.scss")
	if err != nil {
		t.Fatalf("parser.Parse error: %v", err)
	}
	out, _, err := Compile(sheet, Config{})
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	got := serializer.New(serializer.Expanded, 2).Render(out)
	want := ".a {\n  color: red;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileVariableSubstitution(t *testing.T) {
	got := render(t, `
$base: 10px;
.a { width: $base * 2; }
`)
	want := ".a {\n  width: 20px;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileNestingAndParentSelector(t *testing.T) {
	got := render(t, `
.btn {
  color: blue;
  &:hover { color: navy; }
}
`)
	want := ".btn {\n  color: blue;\n}\n\n.btn:hover {\n  color: navy;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileUnknownAtRuleNestedInStyleRuleWrapsSelector(t *testing.T) {
	got := render(t, `
.btn {
  color: blue;
  @font-face { font-family: "Foo"; }
}
`)
	want := ".btn {\n  color: blue;\n}\n\n@font-face {\n  .btn {\n    font-family: \"Foo\";\n  }\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileMixinIncludeWithArguments(t *testing.T) {
	got := render(t, `
@mixin box($size) {
  width: $size;
  height: $size;
}
.a { @include box(5px); }
`)
	want := ".a {\n  width: 5px;\n  height: 5px;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileFunctionCallWithReturn(t *testing.T) {
	got := render(t, `
@function double($n) {
  @return $n * 2;
}
.a { width: double(3px); }
`)
	want := ".a {\n  width: 6px;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileIfElseChain(t *testing.T) {
	got := render(t, `
$flag: false;
.a {
  @if $flag {
    color: red;
  } @else {
    color: blue;
  }
}
`)
	want := ".a {\n  color: blue;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileEachLoopOverList(t *testing.T) {
	got := render(t, `
@each $name in a, b {
  .icon-#{$name} { content: $name; }
}
`)
	want := ".icon-a {\n  content: a;\n}\n\n.icon-b {\n  content: b;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileForLoopThrough(t *testing.T) {
	got := render(t, `
@for $i from 1 through 2 {
  .col-#{$i} { width: $i; }
}
`)
	want := ".col-1 {\n  width: 1;\n}\n\n.col-2 {\n  width: 2;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileExtendMergesSelectors(t *testing.T) {
	got := render(t, `
.target { color: red; }
.extender { @extend .target; }
`)
	want := ".target, .extender {\n  color: red;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileMediaRuleNesting(t *testing.T) {
	got := render(t, `
@media screen {
  .a { color: red; }
}
`)
	want := "@media screen {\n  .a {\n    color: red;\n  }\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileEmptyStyleRuleIsPruned(t *testing.T) {
	got := render(t, `
.empty {
  @if false { color: red; }
}
.kept { color: green; }
`)
	want := ".kept {\n  color: green;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileGlobalVariablesSeedEnvironment(t *testing.T) {
	sheet, err := parser.Parse(".a { color: $theme; }", "input.scss")
	if err != nil {
		t.Fatalf("parser.Parse error: %v", err)
	}
	out, _, err := Compile(sheet, Config{
		GlobalVariables: map[string]value.Value{
			"theme": value.NewString("teal", false),
		},
	})
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	got := serializer.New(serializer.Expanded, 2).Render(out)
	want := ".a {\n  color: teal;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileUndefinedVariableErrors(t *testing.T) {
	sheet, err := parser.Parse(".a { color: $missing; }", "input.scss")
	if err != nil {
		t.Fatalf("parser.Parse error: %v", err)
	}
	if _, _, err := Compile(sheet, Config{}); err == nil {
		t.Error("Compile should error referencing an undefined variable")
	}
}

func TestCompileUseNamespacesMembers(t *testing.T) {
	fsys := fstest.MapFS{
		"_colors.scss": &fstest.MapFile{Data: []byte(`$primary: indigo;`)},
	}
	sheet, err := parser.Parse(`
@use 'colors';
.a { color: $colors.primary; }
`, "input.scss")
	if err != nil {
		t.Fatalf("parser.Parse error: %v", err)
	}
	cfg := Config{Importer: importer.New(fsys, parser.Parse)}
	out, _, err := Compile(sheet, cfg)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	got := serializer.New(serializer.Expanded, 2).Render(out)
	want := ".a {\n  color: indigo;\n}\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestCompileWarnIsCollectedAsWarning(t *testing.T) {
	sheet, err := parser.Parse(`
@warn "careful";
.a { color: red; }
`, "input.scss")
	if err != nil {
		t.Fatalf("parser.Parse error: %v", err)
	}
	_, warnings, err := Compile(sheet, Config{})
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly 1", warnings)
	}
}

func render(t *testing.T, src string) string {
	t.Helper()
	sheet, err := parser.Parse(src, "input.scss")
	if err != nil {
		t.Fatalf("parser.Parse error: %v", err)
	}
	out, _, err := Compile(sheet, Config{})
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	return serializer.New(serializer.Expanded, 2).Render(out)
}
