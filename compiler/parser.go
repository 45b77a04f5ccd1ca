package compiler

// parser takes tokens from the lexer and produces an AST (Abstract Syntax
// Tree). The AST is consumed by the planner to make a logical query plan.

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

const (
	tokenErr   = "unexpected token %s"
	identErr   = "expected identifier but got %s"
	literalErr = "expected literal but got %s"
)

type parser struct {
	tokens []token
	// end is the index of the last consumed token. It starts before the first
	// token.
	end int
}

func NewParser(tokens []token) *parser {
	return &parser{tokens: tokens, end: -1}
}

func (p *parser) Parse() (Stmt, error) {
	return p.parseStmt()
}

func (p *parser) parseStmt() (Stmt, error) {
	sb := &StmtBase{}
	t := p.peekNextNonSpace()
	if t.value == kwExplain {
		p.nextNonSpace()
		if p.peekNextNonSpace().value == kwQuery {
			p.nextNonSpace()
			if tp := p.nextNonSpace(); tp.value != kwPlan {
				return nil, fmt.Errorf(tokenErr, tp.value)
			}
			sb.ExplainQueryPlan = true
		} else {
			sb.Explain = true
		}
		t = p.peekNextNonSpace()
	}
	switch t.value {
	case kwSelect, kwValues, kwTable, "(":
		return p.parseQuery(sb)
	}
	return nil, fmt.Errorf(tokenErr, t.value)
}

func (p *parser) parseQuery(sb *StmtBase) (*QueryStmt, error) {
	body, err := p.parseSetExpr()
	if err != nil {
		return nil, err
	}
	if t := p.nextNonSpace(); t.tokenType != tkEOF && t.value != ";" {
		return nil, fmt.Errorf(tokenErr, t.value)
	}
	return &QueryStmt{StmtBase: sb, Body: body}, nil
}

// parseSetExpr parses a term then folds trailing set operations onto it left
// associatively.
func (p *parser) parseSetExpr() (SetExpr, error) {
	left, err := p.parseSetTerm()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := setOperatorFor(p.peekNextNonSpace().value)
		if !ok {
			return left, nil
		}
		p.nextNonSpace()
		quantifier, err := p.parseSetQuantifier()
		if err != nil {
			return nil, err
		}
		right, err := p.parseSetTerm()
		if err != nil {
			return nil, err
		}
		left = &SetOperationExpr{
			Op:         op,
			Quantifier: quantifier,
			Left:       left,
			Right:      right,
			SrcSpan:    coverSpans(left.SetSpan(), right.SetSpan()),
		}
	}
}

func setOperatorFor(v string) (SetOperator, bool) {
	switch v {
	case kwUnion:
		return Union, true
	case kwIntersect:
		return Intersect, true
	case kwExcept:
		return Except, true
	}
	return 0, false
}

func (p *parser) parseSetQuantifier() (SetQuantifier, error) {
	switch p.peekNextNonSpace().value {
	case kwAll:
		p.nextNonSpace()
		if p.peekNextNonSpace().value == kwBy {
			if err := p.expectByName(); err != nil {
				return None, err
			}
			return AllByName, nil
		}
		return All, nil
	case kwDistinct:
		p.nextNonSpace()
		if p.peekNextNonSpace().value == kwBy {
			if err := p.expectByName(); err != nil {
				return None, err
			}
			return DistinctByName, nil
		}
		return Distinct, nil
	case kwBy:
		if err := p.expectByName(); err != nil {
			return None, err
		}
		return ByName, nil
	}
	return None, nil
}

func (p *parser) expectByName() error {
	p.nextNonSpace()
	if t := p.nextNonSpace(); t.value != kwName {
		return fmt.Errorf(tokenErr, t.value)
	}
	return nil
}

func (p *parser) parseSetTerm() (SetExpr, error) {
	t := p.peekNextNonSpace()
	switch t.value {
	case kwSelect:
		return p.parseSelectCore()
	case kwValues:
		return p.parseValues()
	case kwTable:
		return p.parseTable()
	case "(":
		open := p.nextNonSpace()
		inner, err := p.parseSetExpr()
		if err != nil {
			return nil, err
		}
		closing := p.nextNonSpace()
		if closing.value != ")" {
			return nil, fmt.Errorf(tokenErr, closing.value)
		}
		return &QueryExpr{Inner: inner, SrcSpan: newSpan(open.start, closing.end)}, nil
	}
	return nil, fmt.Errorf(tokenErr, t.value)
}

func (p *parser) parseSelectCore() (*SelectExpr, error) {
	first := p.nextNonSpace()
	stmt := &SelectStmt{}
	for {
		rc, err := p.parseResultColumn()
		if err != nil {
			return nil, err
		}
		stmt.ResultColumns = append(stmt.ResultColumns, rc)
		if p.peekNextNonSpace().value != "," {
			break
		}
		p.nextNonSpace()
	}
	if p.peekNextNonSpace().value == kwFrom {
		p.nextNonSpace()
		t := p.nextNonSpace()
		if t.tokenType != tkIdentifier {
			return nil, fmt.Errorf(identErr, t.value)
		}
		stmt.From = &From{TableName: t.value}
	}
	if p.peekNextNonSpace().value == kwWhere {
		p.nextNonSpace()
		w, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt.Where = w
	}
	return &SelectExpr{Select: stmt, SrcSpan: newSpan(first.start, p.cur().end)}, nil
}

func (p *parser) parseResultColumn() (ResultColumn, error) {
	if p.peekNextNonSpace().value == "*" {
		p.nextNonSpace()
		return ResultColumn{All: true}, nil
	}
	e, err := p.parseExpr()
	if err != nil {
		return ResultColumn{}, err
	}
	rc := ResultColumn{Expression: e}
	if p.peekNextNonSpace().value == kwAs {
		p.nextNonSpace()
		a := p.nextNonSpace()
		if a.tokenType != tkIdentifier {
			return ResultColumn{}, fmt.Errorf(identErr, a.value)
		}
		rc.Alias = a.value
	}
	return rc, nil
}

func (p *parser) parseValues() (*ValuesExpr, error) {
	first := p.nextNonSpace()
	rows := [][]Expr{}
	for {
		if t := p.nextNonSpace(); t.value != "(" {
			return nil, fmt.Errorf(tokenErr, t.value)
		}
		row := []Expr{}
		for {
			e, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			row = append(row, e)
			sep := p.nextNonSpace()
			if sep.value == ")" {
				break
			}
			if sep.value != "," {
				return nil, fmt.Errorf(tokenErr, sep.value)
			}
		}
		rows = append(rows, row)
		if p.peekNextNonSpace().value != "," {
			break
		}
		p.nextNonSpace()
	}
	return &ValuesExpr{Rows: rows, SrcSpan: newSpan(first.start, p.cur().end)}, nil
}

// parseTable parses a TABLE clause. The planner has no translation for it so
// the clause parses to an UnsupportedExpr.
func (p *parser) parseTable() (*UnsupportedExpr, error) {
	first := p.nextNonSpace()
	t := p.nextNonSpace()
	if t.tokenType != tkIdentifier {
		return nil, fmt.Errorf(identErr, t.value)
	}
	return &UnsupportedExpr{
		Description: kwTable + " " + t.value,
		SrcSpan:     newSpan(first.start, t.end),
	}, nil
}

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	if p.peekNextNonSpace().tokenType != tkOperator {
		return left, nil
	}
	op := p.nextNonSpace()
	right, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Left: left, Operator: op.value, Right: right}, nil
}

func (p *parser) parseOperand() (Expr, error) {
	t := p.nextNonSpace()
	switch {
	case t.tokenType == tkNumeric:
		v, err := cast.ToIntE(t.value)
		if err != nil {
			return nil, fmt.Errorf(literalErr, t.value)
		}
		return &IntLit{Value: v}, nil
	case t.tokenType == tkLiteral:
		return &StringLit{Value: strings.Trim(t.value, "'")}, nil
	case t.value == kwNull:
		return &NullLit{}, nil
	case t.tokenType == tkIdentifier:
		if p.peekNextNonSpace().value == "." {
			p.nextNonSpace()
			c := p.nextNonSpace()
			if c.tokenType != tkIdentifier {
				return nil, fmt.Errorf(identErr, c.value)
			}
			return &ColumnRef{Table: t.value, Column: c.value}, nil
		}
		return &ColumnRef{Column: t.value}, nil
	}
	return nil, fmt.Errorf(tokenErr, t.value)
}

func (p *parser) nextNonSpace() token {
	p.end += 1
	for p.end < len(p.tokens) && p.tokens[p.end].tokenType == tkWhitespace {
		p.end += 1
	}
	if p.end >= len(p.tokens) {
		p.end = len(p.tokens)
		return token{tokenType: tkEOF}
	}
	return p.tokens[p.end]
}

func (p *parser) peekNextNonSpace() token {
	i := p.end + 1
	for i < len(p.tokens) && p.tokens[i].tokenType == tkWhitespace {
		i += 1
	}
	if i >= len(p.tokens) {
		return token{tokenType: tkEOF}
	}
	return p.tokens[i]
}

func (p *parser) cur() token {
	if p.end < 0 || p.end >= len(p.tokens) {
		return token{tokenType: tkEOF}
	}
	return p.tokens[p.end]
}
