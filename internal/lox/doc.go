/*
Package lox implements a tree-walking interpreter for the Lox language.

Source text goes through the Scanner, the Parser and finally the Interpreter,
which evaluates the syntax tree directly. Runner ties the three together.

Grammars

	program    --> decl* EOF ;
	decl       --> funDecl
	             | varDecl
	             | stmt ;
	funDecl    --> "fun" IDENT "(" params? ")" block ;
	params     --> IDENT ( "," IDENT )* ;
	varDecl    --> "var" IDENT ( "=" expr )? ";" ;
	stmt       --> block
	             | exprStmt
	             | forStmt
	             | ifStmt
	             | printStmt
	             | returnStmt
	             | whileStmt
	             | "break" ";"
	             | "continue" ";" ;
	block      --> "{" decl* "}" ;
	exprStmt   --> expr ";" ;
	forStmt    --> "for" "(" ( varDecl | exprStmt | ";" ) expr? ";" expr? ")" stmt ;
	ifStmt     --> "if" "(" expr ")" stmt ( "else" stmt )? ;
	printStmt  --> "print" expr ";" ;
	returnStmt --> "return" expr? ";" ;
	whileStmt  --> "while" "(" expr ")" stmt ;
	expr       --> assign ;
	assign     --> IDENT "=" assign
	             | or ;
	or         --> and ( "or" and )* ;
	and        --> equality ( "and" equality )* ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" ) unary
	             | call ;
	call       --> primary ( "(" args? ")" )* ;
	args       --> expr ( "," expr )* ;
	primary    --> NUMBER | STRING | IDENT
	             | "true" | "false" | "nil"
	             | "(" expr ")" ;

Functions take at most 255 parameters and calls at most 255 arguments.

"break" and "continue" outside of a loop body do nothing.
*/
package lox

//go:generate go run ../cmd/ast_codegen .
