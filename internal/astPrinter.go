package internal

import (
	"fmt"
	"strings"
)

// printTree renders statements in parenthesized prefix form, one per line
func printTree(stmts []stmt) string {
	lines := make([]string, len(stmts))
	for i, st := range stmts {
		lines[i] = stmtString(st)
	}
	return strings.Join(lines, "\n")
}

func stmtString(s stmt) string {
	switch st := s.(type) {
	case *exprStmt:
		return parenthesize(";", exprString(st.expression))
	case *printStmt:
		return parenthesize("print", exprString(st.expression))
	case *varStmt:
		if st.initializer == nil {
			return parenthesize("var", st.name.lexeme)
		}
		return parenthesize("var", st.name.lexeme, exprString(st.initializer))
	case *blockStmt:
		parts := make([]string, len(st.stmts))
		for i, inner := range st.stmts {
			parts[i] = stmtString(inner)
		}
		return parenthesize("block", parts...)
	case *ifStmt:
		if st.elseBranch == nil {
			return parenthesize("if", exprString(st.condition), stmtString(st.thenBranch))
		}
		return parenthesize("if", exprString(st.condition), stmtString(st.thenBranch), stmtString(st.elseBranch))
	case *whileStmt:
		return parenthesize("while", exprString(st.condition), stmtString(st.body))
	case *fnStmt:
		params := make([]string, len(st.params))
		for i, param := range st.params {
			params[i] = param.lexeme
		}
		parts := []string{st.name.lexeme, "(" + strings.Join(params, " ") + ")"}
		for _, inner := range st.body {
			parts = append(parts, stmtString(inner))
		}
		return parenthesize("fun", parts...)
	}
	return fmt.Sprintf("<%T>", s)
}

func exprString(ex expr) string {
	switch expr := ex.(type) {
	case *literalExpr:
		if r, ok := expr.value.(Representable); ok {
			return r.Repr()
		}
		return stringify(expr.value)
	case *groupingExpr:
		return parenthesize("group", exprString(expr.expression))
	case *variableExpr:
		return expr.name.lexeme
	case *assignExpr:
		return parenthesize("=", expr.name.lexeme, exprString(expr.value))
	case *unaryExpr:
		return parenthesize(expr.operator.lexeme, exprString(expr.right))
	case *binaryExpr:
		return parenthesize(expr.operator.lexeme, exprString(expr.left), exprString(expr.right))
	case *logicalExpr:
		return parenthesize(expr.operator.lexeme, exprString(expr.left), exprString(expr.right))
	case *callExpr:
		parts := []string{exprString(expr.callee)}
		for _, arg := range expr.arguments {
			parts = append(parts, exprString(arg))
		}
		return parenthesize("call", parts...)
	}
	return fmt.Sprintf("<%T>", ex)
}

func parenthesize(name string, parts ...string) string {
	out := "(" + name
	for _, part := range parts {
		out += " " + part
	}
	return out + ")"
}
