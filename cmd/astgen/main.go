package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

var nodes = map[string][]string{
	"Stmt": {
		"Block: stmts []stmt",
		"Expr: expression expr",
		"Fn: name *token, params []*token, body []stmt",
		"If: condition expr, thenBranch stmt, elseBranch stmt",
		"Print: expression expr",
		"Var: name *token, initializer expr",
		"While: condition expr, body stmt",
	},
	"Expr": {
		"Assign: name *token, value expr",
		"Binary: left expr, operator *token, right expr",
		"Call: callee expr, paren *token, arguments []expr",
		"Grouping: expression expr",
		"Literal: value interface{}",
		"Logical: left expr, operator *token, right expr",
		"Unary: operator *token, right expr",
		"Variable: name *token",
	},
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: astgen Expr|Stmt")
		os.Exit(64)
	}
	types, ok := nodes[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "astgen: unknown base type %q\n", os.Args[1])
		os.Exit(64)
	}
	out, err := format.Source([]byte(generateAst(os.Args[1], types)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

// generateAst emits a closed set of node structs. Every node implements the
// base interface through an unexported marker method, so evaluation and
// printing dispatch with a type switch.
func generateAst(baseName string, types []string) string {
	base := strings.ToLower(baseName)

	out := "// Code generated by astgen. DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	// Start base interface
	out += "type " + base + " interface {\n"
	out += "\t" + base + "Node()\n"
	out += "}\n\n"
	// End base interface

	// Start structs
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
	for _, field := range strings.Split(fields, ",") {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Marker Method
	out += "func (*" + structName + ") " + strings.ToLower(baseName) + "Node() {}\n\n"
	// End Marker Method

	return out
}
