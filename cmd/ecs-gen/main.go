// ecs-gen mechanically produces System boilerplate for plain update
// functions, so callers never hand-write the System capability.
//
// Annotate a function of signature func(*ecs.World) error with a directive
// comment and invoke the generator through go:generate:
//
//	//go:generate go run github.com/dimitri-br/go-ecs/cmd/ecs-gen
//
//	//ecs:system reads=Position writes=Accumulator
//	func accumulate(w *ecs.World) error { ... }
//
// For each annotated function the generator emits a <name>System struct
// whose Update delegates to the function and whose TypeKey reports the
// struct type. The optional reads=/writes= lists become a ComponentAccessor
// declaration, letting the scheduler run the system concurrently with
// non-conflicting systems.
package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
)

const directive = "//ecs:system"

type systemInfo struct {
	StructName string
	FuncName   string
	Reads      []string
	Writes     []string
	HasAccess  bool
}

func main() {
	inPackage := os.Getenv("GOPACKAGE")
	inFileName := os.Getenv("GOFILE")
	src, err := os.ReadFile(inFileName)
	if err != nil {
		panic(err)
	}
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		panic(err)
	}

	systems := scanSystems(f)
	if len(systems) == 0 {
		fmt.Printf("no %s functions found in %s\n", directive, inFileName)
		return
	}
	for _, info := range systems {
		fmt.Printf("system: %s => %s\n", info.FuncName, info.StructName)
	}

	var buf bytes.Buffer
	if err := packageTemplate.Execute(&buf, struct {
		Package string
		Systems []systemInfo
	}{
		Package: inPackage,
		Systems: systems,
	}); err != nil {
		panic(err)
	}
	formattedCode, err := format.Source(buf.Bytes())
	if err != nil {
		panic(err)
	}
	dir := filepath.Dir(inFileName)
	outFileName := filepath.Join(dir,
		fmt.Sprintf("%s-gen.go", inFileName[:len(inFileName)-len(filepath.Ext(inFileName))]))
	w, err := os.Create(outFileName)
	if err != nil {
		panic(err)
	}
	defer w.Close()
	w.Write(formattedCode)
}

func scanSystems(f *ast.File) []systemInfo {
	var systems []systemInfo
	for _, decl := range f.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Doc == nil || fn.Recv != nil {
			continue
		}
		for _, comment := range fn.Doc.List {
			if !strings.HasPrefix(comment.Text, directive) {
				continue
			}
			validateSignature(fn)
			info := systemInfo{
				StructName: toCamelCase(fn.Name.Name) + "System",
				FuncName:   fn.Name.Name,
			}
			info.Reads, info.Writes = parseAccess(strings.TrimPrefix(comment.Text, directive))
			info.HasAccess = len(info.Reads) > 0 || len(info.Writes) > 0
			systems = append(systems, info)
			break
		}
	}
	return systems
}

func validateSignature(fn *ast.FuncDecl) {
	bad := func() {
		panic(fmt.Sprintf(`system func "%s" must have signature func(*ecs.World) error`, fn.Name.Name))
	}
	params := fn.Type.Params
	if params == nil || len(params.List) != 1 {
		bad()
	}
	if _, ok := params.List[0].Type.(*ast.StarExpr); !ok {
		bad()
	}
	results := fn.Type.Results
	if results == nil || len(results.List) != 1 {
		bad()
	}
	if iden, ok := results.List[0].Type.(*ast.Ident); !ok || iden.Name != "error" {
		bad()
	}
}

// parseAccess splits the directive arguments, e.g.
// "reads=Position,Velocity writes=Accumulator".
func parseAccess(args string) (reads, writes []string) {
	for _, field := range strings.Fields(args) {
		key, list, found := strings.Cut(field, "=")
		if !found {
			panic(fmt.Sprintf(`malformed %s argument %q`, directive, field))
		}
		types := strings.Split(list, ",")
		switch key {
		case "reads":
			reads = append(reads, types...)
		case "writes":
			writes = append(writes, types...)
		default:
			panic(fmt.Sprintf(`unknown %s argument %q`, directive, key))
		}
	}
	return reads, writes
}

func toCamelCase(name string) string {
	var result strings.Builder
	first := true
	for _, c := range name {
		if c == '_' {
			first = true
			continue
		}
		if first {
			result.WriteRune(unicode.ToUpper(c))
			first = false
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

var packageTemplate = template.Must(template.New("").Parse(
	`// Code generated by "go generate", DO NOT EDIT.
package {{ .Package }}

import (
	ecs "github.com/dimitri-br/go-ecs"
)
{{ range $i,$s := .Systems }}
// {{$s.StructName}} wraps {{$s.FuncName}} as a registrable system.
type {{$s.StructName}} struct{}

// Update implements ecs.System.
func ({{$s.StructName}}) Update(w *ecs.World) error { return {{$s.FuncName}}(w) }

// TypeKey implements ecs.System.
func ({{$s.StructName}}) TypeKey() ecs.TypeKey { return ecs.TypeKeyFor[{{$s.StructName}}]() }
{{- if $s.HasAccess }}

// Reads implements ecs.ComponentAccessor.
func ({{$s.StructName}}) Reads() []ecs.TypeKey {
	return []ecs.TypeKey{
{{- range $t := $s.Reads }}
		ecs.TypeKeyFor[{{$t}}](),
{{- end }}
	}
}

// Writes implements ecs.ComponentAccessor.
func ({{$s.StructName}}) Writes() []ecs.TypeKey {
	return []ecs.TypeKey{
{{- range $t := $s.Writes }}
		ecs.TypeKeyFor[{{$t}}](),
{{- end }}
	}
}
{{- end }}
{{ end }}`))
