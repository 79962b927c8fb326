package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// AstPrinter renders syntax trees as parenthesized prefix expressions. Two
// trees print the same iff they have the same shape, operators and literals.
type AstPrinter struct{}

func (printer *AstPrinter) Print(expr Expr) string {
	s, _ := expr.Accept(printer)
	return s.(string)
}

// PrintStmts renders one statement per line.
func (printer *AstPrinter) PrintStmts(stmts []Stmt) string {
	var b strings.Builder
	for _, stmt := range stmts {
		b.WriteString(printer.printStmt(stmt))
		b.WriteByte('\n')
	}
	return b.String()
}

func (printer *AstPrinter) printStmt(stmt Stmt) string {
	if stmt == nil {
		return "(error)"
	}
	s, _ := stmt.Accept(printer)
	return s.(string)
}

func (printer *AstPrinter) printBlock(stmts []Stmt) string {
	parts := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		parts = append(parts, printer.printStmt(stmt))
	}
	return strings.Join(parts, " ")
}

func (printer *AstPrinter) parenthesize(name string, parts ...string) string {
	var b strings.Builder
	b.WriteString("(" + name)
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(" " + part)
	}
	b.WriteString(")")
	return b.String()
}

func (printer *AstPrinter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	return printer.parenthesize("=", expr.Name.Lexeme, printer.Print(expr.Val)), nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return printer.parenthesize(
		expr.Op.Lexeme,
		printer.Print(expr.Lhs),
		printer.Print(expr.Rhs),
	), nil
}

func (printer *AstPrinter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	parts := []string{printer.Print(expr.Callee)}
	for _, arg := range expr.Args {
		parts = append(parts, printer.Print(arg))
	}
	return printer.parenthesize("call", parts...), nil
}

func (printer *AstPrinter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return printer.parenthesize("group", printer.Print(expr.Expr)), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	switch v := expr.Val.(type) {
	case nil:
		return "nil", nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case string:
		return strconv.Quote(v), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func (printer *AstPrinter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	return printer.parenthesize(
		expr.Op.Lexeme,
		printer.Print(expr.Lhs),
		printer.Print(expr.Rhs),
	), nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return printer.parenthesize(expr.Op.Lexeme, printer.Print(expr.Expr)), nil
}

func (printer *AstPrinter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}

func (printer *AstPrinter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	return printer.parenthesize("block", printer.printBlock(stmt.Stmts)), nil
}

func (printer *AstPrinter) VisitBreakStmt(stmt *BreakStmt) (interface{}, error) {
	return "(break)", nil
}

func (printer *AstPrinter) VisitContinueStmt(stmt *ContinueStmt) (interface{}, error) {
	return "(continue)", nil
}

func (printer *AstPrinter) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	return printer.parenthesize(";", printer.Print(stmt.Expr)), nil
}

func (printer *AstPrinter) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	params := make([]string, 0, len(stmt.Params))
	for _, param := range stmt.Params {
		params = append(params, param.Lexeme)
	}
	return printer.parenthesize(
		"fun",
		stmt.Name.Lexeme,
		"("+strings.Join(params, " ")+")",
		printer.printBlock(stmt.Body),
	), nil
}

func (printer *AstPrinter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	parts := []string{printer.Print(stmt.Cond), printer.printStmt(stmt.ThenBranch)}
	if stmt.ElseBranch != nil {
		parts = append(parts, printer.printStmt(stmt.ElseBranch))
	}
	return printer.parenthesize("if", parts...), nil
}

func (printer *AstPrinter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	return printer.parenthesize("print", printer.Print(stmt.Expr)), nil
}

func (printer *AstPrinter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	if stmt.Val == nil {
		return "(return)", nil
	}
	return printer.parenthesize("return", printer.Print(stmt.Val)), nil
}

func (printer *AstPrinter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	if stmt.Init == nil {
		return printer.parenthesize("var", stmt.Name.Lexeme), nil
	}
	return printer.parenthesize("var", stmt.Name.Lexeme, printer.Print(stmt.Init)), nil
}

func (printer *AstPrinter) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	return printer.parenthesize(
		"while",
		printer.Print(stmt.Cond),
		printer.printStmt(stmt.Body),
	), nil
}
