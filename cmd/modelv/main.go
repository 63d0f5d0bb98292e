package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	modelv "github.com/modelv-go/modelv"
	"github.com/modelv-go/modelv/i18n"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "modelv CLI\n\nUsage:\n  modelv check -schema schema.yaml data.json [more.json...]\n\nSchema file format (field order is validation order):\n  name: string\n  age:\n    type: optional[int]\n    default: 18")
}

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	var schemaPath string
	var lang string
	fs.StringVar(&schemaPath, "schema", "", "YAML schema description")
	fs.StringVar(&lang, "lang", "en", "message language (en/ja)")
	_ = fs.Parse(args)
	if schemaPath == "" || fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	schema, err := loadSchemaFile(schemaPath)
	if err != nil {
		fatalf("loading schema: %v", err)
	}

	ctx := context.Background()
	failed := false
	for _, path := range fs.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			fatalf("reading %s: %v", path, err)
		}
		m, err := modelv.FromJSON(schema, data)
		if err == nil {
			_, err = m.Validate(ctx)
		}
		if err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		fmt.Printf("%s: ok\n", path)
	}
	if failed {
		os.Exit(1)
	}
}

// loadSchemaFile builds a Schema from a YAML mapping. Decoding goes through
// yaml.Node so the file's field order survives into the schema (mapping
// declaration order is validation order).
func loadSchemaFile(path string) (*modelv.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseSchemaYAML(data)
}

func parseSchemaYAML(data []byte) (*modelv.Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty schema document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema document must be a mapping")
	}

	fields := make([]modelv.Field, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		f, err := parseFieldNode(name, root.Content[i+1])
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return modelv.NewSchema(fields...)
}

// parseFieldNode accepts either a bare type string or a mapping with "type"
// and an optional "default".
func parseFieldNode(name string, node *yaml.Node) (modelv.Field, error) {
	f := modelv.Field{Name: name}

	if node.Kind == yaml.ScalarNode {
		t, err := ParseTypeExpr(node.Value)
		if err != nil {
			return modelv.Field{}, fmt.Errorf("field %s: %w", name, err)
		}
		f.Type = t
		return f, nil
	}

	if node.Kind != yaml.MappingNode {
		return modelv.Field{}, fmt.Errorf("field %s: expected type string or mapping", name)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		switch k.Value {
		case "type":
			t, err := ParseTypeExpr(v.Value)
			if err != nil {
				return modelv.Field{}, fmt.Errorf("field %s: %w", name, err)
			}
			f.Type = t
		case "default":
			var dv any
			if err := v.Decode(&dv); err != nil {
				return modelv.Field{}, fmt.Errorf("field %s: bad default: %w", name, err)
			}
			f.Default = dv
			f.HasDefault = true
		default:
			return modelv.Field{}, fmt.Errorf("field %s: unknown option %q", name, k.Value)
		}
	}
	if f.Type.Kind() == modelv.KindAny && !hasTypeOption(node) {
		return modelv.Field{}, fmt.Errorf("field %s: missing type", name)
	}
	return f, nil
}

func hasTypeOption(node *yaml.Node) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "type" {
			return true
		}
	}
	return false
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "modelv: "+format+"\n", args...)
	os.Exit(1)
}
