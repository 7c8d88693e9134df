package main

import (
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

//go:generate sh -c "go run . Expr > ../../internal/expr.go"

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: ast Expr")
		os.Exit(1)
	}

	var out string
	switch os.Args[1] {
	case "Expr":
		out = generateAst("Expr", []string{
			"Integer: literal *token, value int64",
			"String: literal *token",
			"Block: start *token, exprs []expr",
			"Var: name *token, typeName *token, initializer expr",
			"Variable: name *token",
			"Fn: name *token, params []*paramDecl, body *blockExpr",
			"Call: callee *token, arguments []expr",
			"Binary: left expr, operator *token, right expr",
			"Unary: operator *token, right expr",
			"If: keyword *token, branches []*branch, elseBranch *blockExpr",
			"For: keyword *token, condition *blockExpr, body *blockExpr",
		})
	default:
		log.Fatalf("unknown base type %q", os.Args[1])
	}

	src, err := format.Source([]byte(out))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(src))
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + strings.ToLower(baseName) + " interface {\n"
	out += "\taccept(" + strings.ToLower(baseName) + "Visitor) R\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("type %sVisitor interface {\n", strings.ToLower(baseName))
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := strings.ToLower(string(name[0])) + name[1:] + baseName
		out += "\tvisit" + name + baseName + "(" + strings.ToLower(baseName) + " *" + structType + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start  structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := strings.ToLower(string(name[0])) + name[1:] + baseName
	out := "type " + structName + " struct {\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") accept(visitor " + strings.ToLower(baseName) + "Visitor) R {\n"
	out += "\treturn visitor.visit" + name + baseName + "(s)\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
