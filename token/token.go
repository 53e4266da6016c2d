package token

type TokenType string

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT  = "IDENT" // add, foobar, x, y, ...
	INT    = "int"   // 1343456
	FLOAT  = "float" // 1.23
	STRING = "string" // "foo"
	CHAR   = "char"   // 'a'

	// Operators
	ASSIGN = "="

	PLUS    = "+"
	MINUS   = "-"
	STAR    = "*"
	SLASH   = "/"
	PERCENT = "%"

	EQ     = "=="
	NOT_EQ = "!="
	LT     = "<"
	GT     = ">"
	LT_EQ  = "<="
	GT_EQ  = ">="

	AND  = "&&"
	OR   = "||"
	BANG = "!"

	PLUS_PLUS   = "++"
	MINUS_MINUS = "--"

	COLON     = ":"
	SEMICOLON = ";"
	COMMA     = ","
	NEWLINE   = "\n"

	LPAREN = "("
	RPAREN = ")"
	LBRACE = "{"
	RBRACE = "}"
	LBRACK = "["
	RBRACK = "]"

	// Keywords
	LET      = "let"
	FUNC     = "func"
	RETURN   = "return"
	IF       = "if"
	ELSE     = "else"
	WHILE    = "while"
	FOR      = "for"
	SWITCH   = "switch"
	CASE     = "case"
	DEFAULT  = "default"
	BREAK    = "break"
	CONTINUE = "continue"
	PRINT    = "print"
	INPUT    = "input"
	TRUE     = "true"
	FALSE    = "false"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Col     int
}

var keywords = map[string]TokenType{
	"let":      LET,
	"func":     FUNC,
	"return":   RETURN,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"switch":   SWITCH,
	"case":     CASE,
	"default":  DEFAULT,
	"break":    BREAK,
	"continue": CONTINUE,
	"print":    PRINT,
	"input":    INPUT,
	"true":     TRUE,
	"false":    FALSE,

	// The alternate spellings are part of the language. They are not a
	// maintenance accident and must lex identically to the plain forms.
	"balls":           LET,
	"big_balls":       LET,
	"shared_balls":    LET,
	"grab_balls":      FUNC,
	"loop_your_balls": FOR,
	"spin_balls":      WHILE,
	"if_balls":        IF,
	"else_balls":      ELSE,
	"switch_balls":    SWITCH,
	"drop_balls":      BREAK,
	"jiggle_balls":    CONTINUE,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
