package ast

import (
	"bytes"
	"strings"

	"github.com/luna-lang/luna/token"
)

// The base Node interface
type Node interface {
	GetToken() token.Token
	TokenLiteral() string
	String() string
}

type Program struct {
	Statements []Node
}

func (p *Program) GetToken() token.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].GetToken()
	}
	return token.Token{}
}
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) TokenLiteral() string  { return i.Token.Literal }
func (i *Identifier) String() string        { return i.Value }

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) GetToken() token.Token { return il.Token }
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Literal }
func (il *IntegerLiteral) String() string        { return il.Token.Literal }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) GetToken() token.Token { return fl.Token }
func (fl *FloatLiteral) TokenLiteral() string  { return fl.Token.Literal }
func (fl *FloatLiteral) String() string        { return fl.Token.Literal }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) GetToken() token.Token { return sl.Token }
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Literal }
func (sl *StringLiteral) String() string        { return "\"" + sl.Value + "\"" }

type CharLiteral struct {
	Token token.Token
	Value rune
}

func (cl *CharLiteral) GetToken() token.Token { return cl.Token }
func (cl *CharLiteral) TokenLiteral() string  { return cl.Token.Literal }
func (cl *CharLiteral) String() string        { return "'" + string(cl.Value) + "'" }

type BooleanLiteral struct {
	Token token.Token
	Value bool
}

func (b *BooleanLiteral) GetToken() token.Token { return b.Token }
func (b *BooleanLiteral) TokenLiteral() string  { return b.Token.Literal }
func (b *BooleanLiteral) String() string        { return b.Token.Literal }

type ListLiteral struct {
	Token    token.Token // the '[' token
	Elements []Node
}

func (ll *ListLiteral) GetToken() token.Token { return ll.Token }
func (ll *ListLiteral) TokenLiteral() string  { return ll.Token.Literal }
func (ll *ListLiteral) String() string {
	elements := []string{}
	for _, el := range ll.Elements {
		elements = append(elements, el.String())
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

type InfixExpression struct {
	Token    token.Token // the operator token
	Operator string
	Left     Node
	Right    Node
}

func (ie *InfixExpression) GetToken() token.Token { return ie.Token }
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString(" " + ie.Operator + " ")
	out.WriteString(ie.Right.String())
	out.WriteString(")")
	return out.String()
}

type NotExpression struct {
	Token token.Token // the '!' token
	Right Node
}

func (ne *NotExpression) GetToken() token.Token { return ne.Token }
func (ne *NotExpression) TokenLiteral() string  { return ne.Token.Literal }
func (ne *NotExpression) String() string        { return "(!" + ne.Right.String() + ")" }

type IndexExpression struct {
	Token  token.Token // the '[' token
	Target Node
	Index  Node
}

func (ix *IndexExpression) GetToken() token.Token { return ix.Token }
func (ix *IndexExpression) TokenLiteral() string  { return ix.Token.Literal }
func (ix *IndexExpression) String() string {
	return "(" + ix.Target.String() + "[" + ix.Index.String() + "])"
}

type CallExpression struct {
	Token token.Token // the function name token
	Name  string
	Args  []Node
}

func (ce *CallExpression) GetToken() token.Token { return ce.Token }
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	args := []string{}
	for _, a := range ce.Args {
		args = append(args, a.String())
	}
	return ce.Name + "(" + strings.Join(args, ", ") + ")"
}

type InputExpression struct {
	Token  token.Token
	Prompt string
}

func (ie *InputExpression) GetToken() token.Token { return ie.Token }
func (ie *InputExpression) TokenLiteral() string  { return ie.Token.Literal }
func (ie *InputExpression) String() string        { return "input(\"" + ie.Prompt + "\")" }

type LetStatement struct {
	Token token.Token // the 'let' token
	Name  string
	Value Node
}

func (ls *LetStatement) GetToken() token.Token { return ls.Token }
func (ls *LetStatement) TokenLiteral() string  { return ls.Token.Literal }
func (ls *LetStatement) String() string {
	if ls.Value == nil {
		return "let " + ls.Name
	}
	return "let " + ls.Name + " = " + ls.Value.String()
}

type AssignStatement struct {
	Token token.Token // the name token
	Name  string
	Value Node
}

func (as *AssignStatement) GetToken() token.Token { return as.Token }
func (as *AssignStatement) TokenLiteral() string  { return as.Token.Literal }
func (as *AssignStatement) String() string {
	return as.Name + " = " + as.Value.String()
}

type IndexAssignStatement struct {
	Token  token.Token // the '=' token
	Target Node        // evaluates to the list being mutated
	Index  Node
	Value  Node
}

func (ia *IndexAssignStatement) GetToken() token.Token { return ia.Token }
func (ia *IndexAssignStatement) TokenLiteral() string  { return ia.Token.Literal }
func (ia *IndexAssignStatement) String() string {
	return ia.Target.String() + "[" + ia.Index.String() + "] = " + ia.Value.String()
}

type IncStatement struct {
	Token token.Token // the name token
	Name  string
}

func (is *IncStatement) GetToken() token.Token { return is.Token }
func (is *IncStatement) TokenLiteral() string  { return is.Token.Literal }
func (is *IncStatement) String() string        { return is.Name + "++" }

type DecStatement struct {
	Token token.Token // the name token
	Name  string
}

func (ds *DecStatement) GetToken() token.Token { return ds.Token }
func (ds *DecStatement) TokenLiteral() string  { return ds.Token.Literal }
func (ds *DecStatement) String() string        { return ds.Name + "--" }

type PrintStatement struct {
	Token token.Token
	Args  []Node
}

func (ps *PrintStatement) GetToken() token.Token { return ps.Token }
func (ps *PrintStatement) TokenLiteral() string  { return ps.Token.Literal }
func (ps *PrintStatement) String() string {
	args := []string{}
	for _, a := range ps.Args {
		args = append(args, a.String())
	}
	return "print(" + strings.Join(args, ", ") + ")"
}

type ReturnStatement struct {
	Token token.Token
	Value Node // may be nil
}

func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }
func (rs *ReturnStatement) TokenLiteral() string  { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	if rs.Value == nil {
		return "return"
	}
	return "return " + rs.Value.String()
}

type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) GetToken() token.Token { return bs.Token }
func (bs *BreakStatement) TokenLiteral() string  { return bs.Token.Literal }
func (bs *BreakStatement) String() string        { return "break" }

type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) GetToken() token.Token { return cs.Token }
func (cs *ContinueStatement) TokenLiteral() string  { return cs.Token.Literal }
func (cs *ContinueStatement) String() string        { return "continue" }

type IfStatement struct {
	Token token.Token
	Cond  Node
	Then  *BlockStatement
	Else  *BlockStatement // may be nil
}

func (is *IfStatement) GetToken() token.Token { return is.Token }
func (is *IfStatement) TokenLiteral() string  { return is.Token.Literal }
func (is *IfStatement) String() string {
	result := "if " + is.Cond.String() + " " + is.Then.String()
	if is.Else != nil {
		result = result + " else " + is.Else.String()
	}
	return result
}

type WhileStatement struct {
	Token token.Token
	Cond  Node
	Body  *BlockStatement
}

func (ws *WhileStatement) GetToken() token.Token { return ws.Token }
func (ws *WhileStatement) TokenLiteral() string  { return ws.Token.Literal }
func (ws *WhileStatement) String() string {
	return "while " + ws.Cond.String() + " " + ws.Body.String()
}

type ForStatement struct {
	Token token.Token
	Init  Node // may be nil
	Cond  Node // may be nil
	Incr  Node // may be nil
	Body  *BlockStatement
}

func (fs *ForStatement) GetToken() token.Token { return fs.Token }
func (fs *ForStatement) TokenLiteral() string  { return fs.Token.Literal }
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for ")
	if fs.Init != nil {
		out.WriteString(fs.Init.String())
	}
	out.WriteString("; ")
	if fs.Cond != nil {
		out.WriteString(fs.Cond.String())
	}
	out.WriteString("; ")
	if fs.Incr != nil {
		out.WriteString(fs.Incr.String())
	}
	out.WriteString(" " + fs.Body.String())
	return out.String()
}

type CaseClause struct {
	Token token.Token
	Value Node // nil for default
	Body  []Node
}

func (cc *CaseClause) GetToken() token.Token { return cc.Token }
func (cc *CaseClause) TokenLiteral() string  { return cc.Token.Literal }
func (cc *CaseClause) String() string {
	var out bytes.Buffer
	if cc.Value == nil {
		out.WriteString("default:")
	} else {
		out.WriteString("case " + cc.Value.String() + ":")
	}
	for _, s := range cc.Body {
		out.WriteString(" " + s.String())
	}
	return out.String()
}

type SwitchStatement struct {
	Token   token.Token
	Subject Node
	Cases   []*CaseClause
	Default *CaseClause // may be nil
}

func (ss *SwitchStatement) GetToken() token.Token { return ss.Token }
func (ss *SwitchStatement) TokenLiteral() string  { return ss.Token.Literal }
func (ss *SwitchStatement) String() string {
	var out bytes.Buffer
	out.WriteString("switch " + ss.Subject.String() + " {")
	for _, c := range ss.Cases {
		out.WriteString(" " + c.String())
	}
	if ss.Default != nil {
		out.WriteString(" " + ss.Default.String())
	}
	out.WriteString(" }")
	return out.String()
}

// A BlockStatement executes in a fresh scope.
type BlockStatement struct {
	Token      token.Token // the '{' token
	Statements []Node
}

func (bs *BlockStatement) GetToken() token.Token { return bs.Token }
func (bs *BlockStatement) TokenLiteral() string  { return bs.Token.Literal }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range bs.Statements {
		out.WriteString(s.String())
		out.WriteString("; ")
	}
	out.WriteString("}")
	return out.String()
}

// A GroupStatement executes in the current scope. The parser emits one for
// a multi-declaration so all the names land where a single let would.
type GroupStatement struct {
	Token      token.Token
	Statements []Node
}

func (gs *GroupStatement) GetToken() token.Token { return gs.Token }
func (gs *GroupStatement) TokenLiteral() string  { return gs.Token.Literal }
func (gs *GroupStatement) String() string {
	parts := []string{}
	for _, s := range gs.Statements {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "; ")
}

type FunctionDefinition struct {
	Token  token.Token // the 'func' token
	Name   string
	Params []string
	Body   *BlockStatement
}

func (fd *FunctionDefinition) GetToken() token.Token { return fd.Token }
func (fd *FunctionDefinition) TokenLiteral() string  { return fd.Token.Literal }
func (fd *FunctionDefinition) String() string {
	return "func " + fd.Name + "(" + strings.Join(fd.Params, ", ") + ") " + fd.Body.String()
}
