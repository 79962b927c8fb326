package lox

import (
	"errors"
	"fmt"
	"io"
)

// Interpreter exposes methods for evaluating then given Lox syntax tree. This
// struct implements ExprVisitor and StmtVisitor.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	output      io.Writer
	reporter    Reporter
}

func NewInterpreter(output io.Writer, reporter Reporter) *Interpreter {
	globals := NewEnvironment(nil)
	return &Interpreter{
		globals:     globals,
		environment: globals,
		output:      output,
		reporter:    reporter,
	}
}

// Interpret executes the statements in order and stops at the first runtime
// error, which is reported and returned. Bindings in the global scope outlive
// the call, so an interpreter can be fed one REPL line at a time.
func (in *Interpreter) Interpret(statements []Stmt) error {
	for _, stmt := range statements {
		if stmt == nil {
			// placeholder for a declaration that failed to parse
			continue
		}
		if _, err := in.execute(stmt); err != nil {
			err = in.escaped(err)
			in.reporter.Report(err)
			return err
		}
	}
	return nil
}

// escaped turns control signals that reached the top level into runtime
// errors.
func (in *Interpreter) escaped(err error) error {
	if ret, ok := err.(*loxReturn); ok {
		return newRuntimeError(ret.keyword, "Can't return from top-level code.")
	}
	var signal loopSignal
	if errors.As(err, &signal) {
		return fmt.Errorf("internal error: unhandled %s signal", signal)
	}
	return err
}

func (in *Interpreter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	return nil, in.executeBlock(stmt.Stmts, NewEnvironment(in.environment))
}

func (in *Interpreter) VisitBreakStmt(stmt *BreakStmt) (interface{}, error) {
	if in.environment.insideLoop {
		return nil, errBreak
	}
	return nil, nil
}

func (in *Interpreter) VisitContinueStmt(stmt *ContinueStmt) (interface{}, error) {
	if in.environment.insideLoop {
		return nil, errContinue
	}
	return nil, nil
}

func (in *Interpreter) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	_, err := in.evaluate(stmt.Expr)
	return nil, err
}

func (in *Interpreter) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	fn := newLoxFn(stmt, in.environment)
	in.environment.Define(stmt.Name.Lexeme, fn)
	return nil, nil
}

func (in *Interpreter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	cond, err := in.evaluate(stmt.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return in.execute(stmt.ThenBranch)
	}
	if stmt.ElseBranch != nil {
		return in.execute(stmt.ElseBranch)
	}
	return nil, nil
}

func (in *Interpreter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	val, err := in.evaluate(stmt.Expr)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(in.output, stringify(val)); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	return nil, nil
}

func (in *Interpreter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	var val interface{}
	if stmt.Val != nil {
		var err error
		if val, err = in.evaluate(stmt.Val); err != nil {
			return nil, err
		}
	}
	return nil, newLoxReturn(stmt.Keyword, val)
}

func (in *Interpreter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	var initVal interface{}
	if stmt.Init != nil {
		var err error
		initVal, err = in.evaluate(stmt.Init)
		if err != nil {
			return nil, err
		}
	}
	in.environment.Define(stmt.Name.Lexeme, initVal)
	return nil, nil
}

func (in *Interpreter) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	env := in.environment
	wasInsideLoop := env.insideLoop
	env.insideLoop = true
	defer func() {
		env.insideLoop = wasInsideLoop
	}()

	for {
		cond, err := in.evaluate(stmt.Cond)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return nil, nil
		}
		_, err = in.execute(stmt.Body)
		switch err {
		case nil:
		case errBreak:
			return nil, nil
		case errContinue:
			if err := in.continueIncrement(stmt); err != nil {
				return nil, err
			}
		default:
			return nil, err
		}
	}
}

// continueIncrement runs the increment clause of a loop desugared from a for
// statement, which a continue would otherwise skip.
func (in *Interpreter) continueIncrement(stmt *WhileStmt) error {
	if !stmt.HasIncrement {
		return nil
	}
	block, ok := stmt.Body.(*BlockStmt)
	if !ok || len(block.Stmts) == 0 {
		return nil
	}
	incr := block.Stmts[len(block.Stmts)-1]
	return in.executeBlock([]Stmt{incr}, NewEnvironment(in.environment))
}

func (in *Interpreter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	val, err := in.evaluate(expr.Val)
	if err != nil {
		return nil, err
	}
	if err := in.environment.Assign(expr.Name, val); err != nil {
		return nil, err
	}
	return val, nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.evaluate(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.evaluate(expr.Rhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG_EQUAL:
		return !isEqual(lhs, rhs), nil

	case EQUAL_EQUAL:
		return isEqual(lhs, rhs), nil

	case GREATER, GREATER_EQUAL, LESS, LESS_EQUAL:
		return compare(expr.Op, lhs, rhs)

	case PLUS:
		leftStr, okLeftStr := lhs.(string)
		rightStr, okRightStr := rhs.(string)
		if okLeftStr && okRightStr {
			return leftStr + rightStr, nil
		}
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum + rightNum, nil

	case MINUS:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum - rightNum, nil

	case STAR:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		return leftNum * rightNum, nil

	case SLASH:
		leftNum, rightNum, err := numberOperands(expr.Op, lhs, rhs)
		if err != nil {
			return nil, err
		}
		if rightNum == 0 {
			return nil, newRuntimeError(expr.Op, "Divide by zero.")
		}
		return leftNum / rightNum, nil
	}
	return nil, newRuntimeError(expr.Op, "Operand must be a number.")
}

func compare(op *Token, lhs, rhs interface{}) (interface{}, error) {
	if leftStr, ok := lhs.(string); ok {
		if rightStr, ok := rhs.(string); ok {
			switch op.Typ {
			case GREATER:
				return leftStr > rightStr, nil
			case GREATER_EQUAL:
				return leftStr >= rightStr, nil
			case LESS:
				return leftStr < rightStr, nil
			default:
				return leftStr <= rightStr, nil
			}
		}
	}
	leftNum, rightNum, err := numberOperands(op, lhs, rhs)
	if err != nil {
		return nil, err
	}
	switch op.Typ {
	case GREATER:
		return leftNum > rightNum, nil
	case GREATER_EQUAL:
		return leftNum >= rightNum, nil
	case LESS:
		return leftNum < rightNum, nil
	default:
		return leftNum <= rightNum, nil
	}
}

func numberOperands(op *Token, lhs, rhs interface{}) (float64, float64, error) {
	leftNum, okLeftNum := lhs.(float64)
	rightNum, okRightNum := rhs.(float64)
	if okLeftNum && okRightNum {
		return leftNum, rightNum, nil
	}
	return 0, 0, newRuntimeError(op, "Operand must be a number.")
}

func (in *Interpreter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	callee, err := in.evaluate(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, 0, len(expr.Args))
	for _, arg := range expr.Args {
		val, err := in.evaluate(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}

	fn, ok := callee.(loxCallable)
	if !ok {
		return nil, newRuntimeError(expr.Paren, "Can only call functions.")
	}
	if len(args) != fn.arity() {
		return nil, newRuntimeError(
			expr.Paren,
			fmt.Sprintf("Expected %d arguments, but got %d.", fn.arity(), len(args)),
		)
	}
	return fn.call(in, args)
}

func (in *Interpreter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return in.evaluate(expr.Expr)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Val, nil
}

func (in *Interpreter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	lhs, err := in.evaluate(expr.Lhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case OR:
		if isTruthy(lhs) {
			return lhs, nil
		}
	case AND:
		if !isTruthy(lhs) {
			return lhs, nil
		}
	default:
		panic("Unreachable")
	}

	return in.evaluate(expr.Rhs)
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	val, err := in.evaluate(expr.Expr)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Typ {
	case BANG:
		return !isTruthy(val), nil
	case MINUS:
		if num, ok := val.(float64); ok {
			return -num, nil
		}
		return nil, newRuntimeError(expr.Op, "Operand must be a number.")
	}
	panic("Unreachable")
}

func (in *Interpreter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return in.environment.Get(expr.Name)
}

// executeBlock runs the statements with env as the current scope and restores
// the previous scope on every exit path.
func (in *Interpreter) executeBlock(statements []Stmt, env *Environment) error {
	previous := in.environment
	in.environment = env
	defer func() {
		in.environment = previous
	}()
	for _, stmt := range statements {
		if _, err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt Stmt) (interface{}, error) {
	return stmt.Accept(in)
}

func (in *Interpreter) evaluate(expr Expr) (interface{}, error) {
	return expr.Accept(in)
}
