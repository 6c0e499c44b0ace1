package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/excel2cfg-go/pkg/excel2cfg/models"
)

const luaTemplate = `-- {{.Prefix}}_{{.BaseName}}
return {
{{- range .Rows}}
    { {{- range $i, $c := .Cells}}{{if $i}}, {{end}}{{$c.Name}} = {{if $c.IsStringType}}"{{$c.Val}}"{{else}}{{$c.Val}}{{end}}{{end -}} },
{{- end}}
}
`

func TestTemplateRenderer(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "lua.tmpl"), []byte(luaTemplate), 0644); err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}

	id := models.SheetIdentity{Name: "lua.c.item", BaseName: "item", ModeTokens: []string{"lua", "c"}}
	doc := NewDocument(id, "cfg", "lua", itemRecords())

	out, err := TemplateRenderer{Dir: dir}.Render("lua", doc)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := "-- cfg_item\nreturn {\n" +
		"    {id = 1, name = \"sword\"},\n" +
		"    {id = 2, name = \"the \\\"bow\\\"\"},\n" +
		"}\n"
	if string(out) != expected {
		t.Errorf("Render() =\n%s\nexpected\n%s", out, expected)
	}
}

func TestTemplateRendererMissingTemplate(t *testing.T) {
	_, err := TemplateRenderer{Dir: t.TempDir()}.Render("xml", Document{})
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("Expected ErrTemplateNotFound, got %v", err)
	}
}

func TestTemplateRendererBadTemplate(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "xml.tmpl"), []byte("{{.Missing"), 0644); err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}
	if _, err := (TemplateRenderer{Dir: dir}).Render("xml", Document{}); err == nil {
		t.Error("Expected a parse error")
	}
}
