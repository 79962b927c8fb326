package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// we do it the scripting way, instead of having types support from Go stdlib
var expressionTypes = []string{
	"Assign: Name *Token, Val Expr",
	"Binary: Op *Token, Lhs Expr, Rhs Expr",
	// Call stores the token for the closing parenthesis so the token's location
	// can be used when we report RuntimeError caused by a function call.
	"Call: Callee Expr, Paren *Token, Args []Expr",
	"Grouping: Expr Expr",
	"Literal: Val interface{}",
	"Logical: Op *Token, Lhs Expr, Rhs Expr",
	"Unary: Op *Token, Expr Expr",
	"Variable: Name *Token",
}

var statementTypes = []string{
	"Block: Stmts []Stmt",
	"Break: Keyword *Token",
	"Continue: Keyword *Token",
	"Expression: Expr Expr",
	"Function: Name *Token, Params []*Token, Body []Stmt",
	"If: Cond Expr, ThenBranch Stmt, ElseBranch Stmt",
	"Print: Expr Expr",
	"Return: Keyword *Token, Val Expr",
	"Var: Name *Token, Init Expr",
	// HasIncrement is set on loops desugared from a for statement that has an
	// increment clause. The increment is the last statement of the body block.
	"While: Cond Expr, Body Stmt, HasIncrement bool",
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast_codegen <output directory>")
		os.Exit(64)
	}

	outputDir, err := filepath.Abs(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for baseName, types := range map[string][]string{
		"Expr": expressionTypes,
		"Stmt": statementTypes,
	} {
		if err := defineAst(outputDir, baseName, types); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func defineAst(outputDir string, baseName string, types []string) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by ast_codegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", filepath.Base(outputDir))

	// Interface for the node kind
	fmt.Fprintf(&buf, "type %s interface {\n", baseName)
	fmt.Fprintf(&buf, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(&buf, "}\n\n")

	defineVisitor(&buf, baseName, types)

	// Generate struct for each AST type
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fields := strings.TrimSpace(strings.Split(t, ":")[1])
		defineType(&buf, baseName, typeName, fields)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format %s: %w", baseName, err)
	}
	fpath := filepath.Join(outputDir, strings.ToLower(baseName)+".go")
	return os.WriteFile(fpath, src, 0644)
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields []string
	var fieldNames []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
		fieldNames = append(fieldNames, strings.Split(field, " ")[0])
	}

	// Struct definition
	fmt.Fprintf(writer, "type %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n\n")

	// Constructor
	fmt.Fprintf(
		writer,
		"func New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		strings.Join(fields, ", "),
		typeName, baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(fieldNames, ", "),
	)
	fmt.Fprintf(writer, "}\n\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"func (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		strings.ToLower(baseName),
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
	fmt.Fprintf(writer, "}\n\n")
}
