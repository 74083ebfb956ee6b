// Package javasource inspects the Java class that a properties file sits
// next to, to check that the file is named after a class that exists
package javasource

import (
	"context"
	"fmt"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/spf13/afero"
	"golang.org/x/exp/slices"
)

// A SourceFile is a parsed Java compilation unit
type SourceFile struct {
	Name   string
	Source []byte
	Ast    *sitter.Node
}

func (file SourceFile) String() string {
	return fmt.Sprintf("SourceFile { Name: %s, Ast: %v }", file.Name, file.Ast)
}

// CompanionPath returns where the Java source for a class described by a
// properties file is expected to be
// Ex: src/jms/Sender.properties, Sender -> src/jms/Sender.java
func CompanionPath(propertiesPath, className string) string {
	return filepath.Join(filepath.Dir(propertiesPath), className+".java")
}

// Load reads and parses the Java file at path
func Load(ctx context.Context, fs afero.Fs, path string) (*SourceFile, error) {
	source, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	file := &SourceFile{Name: path, Source: source}
	if err := file.ParseAST(ctx); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return file, nil
}

func (file *SourceFile) ParseAST(ctx context.Context) error {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, file.Source)
	if err != nil {
		return err
	}

	file.Ast = tree.RootNode()
	return nil
}

// Package returns the declared package of the file, or an empty string for
// the default package
func (file *SourceFile) Package() string {
	for _, node := range Children(file.Ast) {
		if node.Type() == "package_declaration" && node.NamedChildCount() > 0 {
			return node.NamedChild(0).Content(file.Source)
		}
	}
	return ""
}

// TypeNames lists the names of every top-level type declared in the file
func (file *SourceFile) TypeNames() []string {
	var names []string
	for _, node := range Children(file.Ast) {
		switch node.Type() {
		case "class_declaration", "interface_declaration", "enum_declaration", "record_declaration":
			if name := node.ChildByFieldName("name"); name != nil {
				names = append(names, name.Content(file.Source))
			}
		}
	}
	return names
}

// Declares reports whether a top-level type with the given name is in the file
func (file *SourceFile) Declares(className string) bool {
	return slices.Contains(file.TypeNames(), className)
}

// Children returns the named children of a node
func Children(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		children[i] = node.NamedChild(i)
	}
	return children
}
