package lexer

import (
	"strings"

	"github.com/luna-lang/luna/report"
	"github.com/luna-lang/luna/token"
)

type Lexer struct {
	reader strings.Reader
	ch     rune // current rune under examination
	line   int  // the line number
	col    int  // the column number of the current rune
	tstart int  // the value of col at the start of a token

	HadError bool
}

func New(input string) *Lexer {
	r := *strings.NewReader(input)
	l := &Lexer{reader: r, line: 1, col: 0}
	l.readChar()
	return l
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	l.tstart = l.col

	var tok token.Token

	switch l.ch {
	case '\n':
		tok = l.NewToken(token.NEWLINE, "\n")
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.NewToken(token.EQ, "==")
		} else {
			tok = l.NewToken(token.ASSIGN, "=")
		}
	case '+':
		if l.peekChar() == '+' {
			l.readChar()
			tok = l.NewToken(token.PLUS_PLUS, "++")
		} else {
			tok = l.NewToken(token.PLUS, "+")
		}
	case '-':
		if l.peekChar() == '-' {
			l.readChar()
			tok = l.NewToken(token.MINUS_MINUS, "--")
		} else {
			tok = l.NewToken(token.MINUS, "-")
		}
	case '*':
		tok = l.NewToken(token.STAR, "*")
	case '/':
		tok = l.NewToken(token.SLASH, "/")
	case '%':
		tok = l.NewToken(token.PERCENT, "%")
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.NewToken(token.LT_EQ, "<=")
		} else {
			tok = l.NewToken(token.LT, "<")
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.NewToken(token.GT_EQ, ">=")
		} else {
			tok = l.NewToken(token.GT, ">")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = l.NewToken(token.NOT_EQ, "!=")
		} else {
			tok = l.NewToken(token.BANG, "!")
		}
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok = l.NewToken(token.AND, "&&")
		} else {
			tok = l.NewToken(token.IDENT, "&")
		}
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			tok = l.NewToken(token.OR, "||")
		} else {
			tok = l.NewToken(token.IDENT, "|")
		}
	case ':':
		tok = l.NewToken(token.COLON, ":")
	case ';':
		tok = l.NewToken(token.SEMICOLON, ";")
	case ',':
		tok = l.NewToken(token.COMMA, ",")
	case '{':
		tok = l.NewToken(token.LBRACE, "{")
	case '}':
		tok = l.NewToken(token.RBRACE, "}")
	case '[':
		tok = l.NewToken(token.LBRACK, "[")
	case ']':
		tok = l.NewToken(token.RBRACK, "]")
	case '(':
		tok = l.NewToken(token.LPAREN, "(")
	case ')':
		tok = l.NewToken(token.RPAREN, ")")
	case '"':
		tok = l.NewToken(token.STRING, "")
		s, ok := l.readString()
		tok.Literal = s
		if !ok {
			l.Throw(tok, "unterminated string")
			tok.Type = token.ILLEGAL
		}
	case '\'':
		tok = l.NewToken(token.CHAR, "")
		c, ok := l.readCharLiteral()
		tok.Literal = string(c)
		if !ok {
			l.Throw(tok, "malformed character literal")
			tok.Type = token.ILLEGAL
		}
	case 0:
		tok = l.NewToken(token.EOF, "")
		return tok
	default:
		if isDigit(l.ch) {
			return l.readNumber()
		}
		if isLetter(l.ch) {
			lit := l.readIdentifier()
			return l.NewToken(token.LookupIdent(lit), lit)
		}
		// Anything we don't recognize folds into a one-character
		// identifier and the parser produces the eventual error.
		tok = l.NewToken(token.IDENT, string(l.ch))
	}
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch == '#' || (l.ch == '/' && l.peekChar() == '/') {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			continue
		}
		return
	}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.reader.Len() == 0 {
		l.ch = 0
	} else {
		l.ch, _, _ = l.reader.ReadRune()
	}
	l.col++
}

func (l *Lexer) peekChar() rune {
	if l.reader.Len() == 0 {
		return 0
	}
	ru, _, _ := l.reader.ReadRune()
	l.reader.UnreadRune()
	return ru
}

// readNumber consumes an integer, or a float when the dot is followed by a
// digit. A trailing bare dot stays with whatever comes next.
func (l *Lexer) readNumber() token.Token {
	result := ""
	for isDigit(l.ch) {
		result = result + string(l.ch)
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		result = result + string(l.ch)
		l.readChar()
		for isDigit(l.ch) {
			result = result + string(l.ch)
			l.readChar()
		}
		return l.NewToken(token.FLOAT, result)
	}
	return l.NewToken(token.INT, result)
}

func (l *Lexer) readString() (string, bool) {
	escape := false
	result := ""
	for {
		l.readChar()
		if (l.ch == '"' && !escape) || l.ch == 0 || l.ch == '\n' {
			break
		}
		if l.ch == '\\' && !escape {
			escape = true
			continue
		}
		charToAdd := l.ch
		if escape {
			escape = false
			switch l.ch {
			case 'n':
				charToAdd = '\n'
			case 't':
				charToAdd = '\t'
			case '"':
				charToAdd = '"'
			case '\\':
				charToAdd = '\\'
			}
		}
		result = result + string(charToAdd)
	}
	if l.ch == 0 || l.ch == '\n' {
		return result, false
	}
	return result, true
}

func (l *Lexer) readCharLiteral() (rune, bool) {
	l.readChar()
	if l.ch == 0 || l.ch == '\n' {
		return 0, false
	}
	c := l.ch
	if c == '\\' {
		l.readChar()
		switch l.ch {
		case 'n':
			c = '\n'
		case 't':
			c = '\t'
		case '0':
			c = 0
		case '\'':
			c = '\''
		case '\\':
			c = '\\'
		default:
			return 0, false
		}
	}
	l.readChar()
	if l.ch != '\'' {
		return c, false
	}
	return c, true
}

func (l *Lexer) readIdentifier() string {
	result := ""
	for isLetter(l.ch) || isDigit(l.ch) {
		result = result + string(l.ch)
		l.readChar()
	}
	return result
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) NewToken(tokenType token.TokenType, st string) token.Token {
	return token.Token{Type: tokenType, Literal: st, Line: l.line, Col: l.tstart}
}

func (l *Lexer) Throw(tok token.Token, msg string) {
	if l.HadError {
		return
	}
	l.HadError = true
	report.Error(report.Syntax, tok.Line, tok.Col, "%s", msg)
}
