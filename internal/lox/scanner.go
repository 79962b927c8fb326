package lox

import (
	"fmt"
	"strconv"
)

// Scanner parses the input source and collects all the tokens that can be found
type Scanner struct {
	line     int
	column   int
	start    int
	current  int
	source   []byte
	tokens   []*Token
	reporter Reporter

	// position of the first character of the current lexeme
	startLine   int
	startColumn int
}

// NewScanner creates a new Lox token scanner
func NewScanner(source []byte, reporter Reporter) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.column = 1
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	scanner.reporter = reporter
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. The returned sequence always ends with an EOF token.
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		scanner.startLine = scanner.line
		scanner.startColumn = scanner.column
		switch c := scanner.advance(); c {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.newline()
		// Single character tokens
		case '(':
			scanner.addToken(LEFT_PAREN, nil)
		case ')':
			scanner.addToken(RIGHT_PAREN, nil)
		case '{':
			scanner.addToken(LEFT_BRACE, nil)
		case '}':
			scanner.addToken(RIGHT_BRACE, nil)
		case ',':
			scanner.addToken(COMMA, nil)
		case '.':
			scanner.addToken(DOT, nil)
		case '-':
			scanner.addToken(MINUS, nil)
		case '+':
			scanner.addToken(PLUS, nil)
		case ';':
			scanner.addToken(SEMICOLON, nil)
		case '*':
			scanner.addToken(STAR, nil)
		// Double character tokens
		case '!':
			if scanner.match('=') {
				scanner.addToken(BANG_EQUAL, nil)
			} else {
				scanner.addToken(BANG, nil)
			}
		case '=':
			if scanner.match('=') {
				scanner.addToken(EQUAL_EQUAL, nil)
			} else {
				scanner.addToken(EQUAL, nil)
			}
		case '<':
			if scanner.match('=') {
				scanner.addToken(LESS_EQUAL, nil)
			} else {
				scanner.addToken(LESS, nil)
			}
		case '>':
			if scanner.match('=') {
				scanner.addToken(GREATER_EQUAL, nil)
			} else {
				scanner.addToken(GREATER, nil)
			}
		// Long lexemes
		case '/':
			if scanner.match('/') {
				// consume the comment, but keep the \n at the end of line so line
				// counting can work correctly
				for scanner.peek() != '\n' && scanner.hasNext() {
					scanner.advance()
				}
			} else {
				scanner.addToken(SLASH, nil)
			}
		// Literals
		case '"':
			scanner.scanString()
		default:
			if isDigit(c) {
				scanner.scanNumber()
			} else if isAlpha(c) {
				scanner.scanIdentifier()
			} else {
				scanner.reporter.Report(newScanError(
					scanner.startLine,
					scanner.startColumn,
					fmt.Sprintf("Unexpected character %q.", rune(c)),
				))
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", nil, scanner.line, scanner.column),
	)
	return scanner.tokens
}

func (scanner *Scanner) scanString() {
	// read until EOF or found a maching '"' --> our string includes \n
	for scanner.peek() != '"' && scanner.hasNext() {
		if scanner.advance() == '\n' {
			scanner.newline()
		}
	}

	if !scanner.hasNext() {
		scanner.reporter.Report(newScanError(
			scanner.startLine,
			scanner.startColumn,
			"Unterminated string.",
		))
		return
	}

	// consume '"'
	scanner.advance()
	// content between '"' pair
	literal := string(scanner.source[scanner.start+1 : scanner.current-1])
	scanner.addToken(STRING, literal)
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	// NOTE: we're ignoring the error, since we have already verified that the
	// lexeme contains a valid 64-bit floating point.
	literal, _ := strconv.ParseFloat(lexeme, 64)
	scanner.addToken(NUMBER, literal)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tokenType, isKeyword := KeywordTokens[lexeme]
	if !isKeyword {
		scanner.addToken(IDENTIFIER, nil)
		return
	}
	switch tokenType {
	case TRUE:
		scanner.addToken(TRUE, true)
	case FALSE:
		scanner.addToken(FALSE, false)
	default:
		scanner.addToken(tokenType, nil)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type and carries the given literal. The token is positioned at the first
// character of the lexeme.
func (scanner *Scanner) addToken(typ TokenType, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, literal, scanner.startLine, scanner.startColumn)
	scanner.tokens = append(scanner.tokens, tok)
}

func (scanner *Scanner) newline() {
	scanner.line++
	scanner.column = 1
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the byte at the current position
func (scanner *Scanner) advance() byte {
	c := scanner.source[scanner.current]
	scanner.current++
	scanner.column++
	return c
}

// match checks if the byte at the current possition is equal to the given byte,
// if they are equal, consumes the byte at the current position.
func (scanner *Scanner) match(expected byte) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	scanner.column++
	return true
}

// peek returns the byte at the current position, but does not consume it
func (scanner *Scanner) peek() byte {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

// peekNext returns the byte at the next position, but does not consume it
func (scanner *Scanner) peekNext() byte {
	if scanner.current+1 >= len(scanner.source) {
		return '\x00'
	}
	return scanner.source[scanner.current+1]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isAlphanumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
