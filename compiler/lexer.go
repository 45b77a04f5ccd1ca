// lexer creates tokens from a sql string. The tokens are fed into the parser.
package compiler

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenType int

const (
	// tkKeyword is a reserved word. For example SELECT, FROM, or WHERE.
	tkKeyword tokenType = iota + 1
	// tkIdentifier is a word that is not a keyword like a table or column
	// name.
	tkIdentifier
	// tkWhitespace is a space, tab, or newline.
	tkWhitespace
	// tkEOF (End of file) is the end of input.
	tkEOF
	// tkSeparator is punctuation such as "(", ",", ";".
	tkSeparator
	// tkOperator is a symbol that operates on arguments. For example "=" or
	// "<=".
	tkOperator
	// tkPunctuator is punctuation that is neither a separator or operator.
	tkPunctuator
	// tkLiteral is a quoted text value like 'foo'.
	tkLiteral
	// tkNumeric is a numeric value like 1.
	tkNumeric
)

// token is a lexed chunk of the source. start and end are byte offsets into
// the original sql text so later stages can point errors at the exact clause.
type token struct {
	tokenType tokenType
	value     string
	start     int
	end       int
}

const (
	kwExplain   = "EXPLAIN"
	kwQuery     = "QUERY"
	kwPlan      = "PLAN"
	kwSelect    = "SELECT"
	kwFrom      = "FROM"
	kwWhere     = "WHERE"
	kwAs        = "AS"
	kwValues    = "VALUES"
	kwUnion     = "UNION"
	kwIntersect = "INTERSECT"
	kwExcept    = "EXCEPT"
	kwAll       = "ALL"
	kwDistinct  = "DISTINCT"
	kwBy        = "BY"
	kwName      = "NAME"
	kwTable     = "TABLE"
	kwNull      = "NULL"
)

var keywords = []string{
	kwExplain,
	kwQuery,
	kwPlan,
	kwSelect,
	kwFrom,
	kwWhere,
	kwAs,
	kwValues,
	kwUnion,
	kwIntersect,
	kwExcept,
	kwAll,
	kwDistinct,
	kwBy,
	kwName,
	kwTable,
	kwNull,
}

func (*lexer) isKeyword(w string) bool {
	uw := strings.ToUpper(w)
	return slices.Contains(keywords, uw)
}

// lexer never trims or rewrites the source. Token offsets must reference
// positions in the original unmodified text.
type lexer struct {
	src   string
	start int
	end   int
}

func NewLexer(src string) *lexer {
	return &lexer{src: src}
}

func (l *lexer) Lex() []token {
	ret := []token{}
	for {
		t := l.getToken()
		if t.tokenType == tkEOF {
			return ret
		}
		ret = append(ret, t)
	}
}

// ToStatements splits the source into individual statement strings on
// semicolons. Semicolons inside quoted literals do not split.
func (l *lexer) ToStatements() []string {
	tokens := l.Lex()
	statements := []string{}
	start := 0
	for _, t := range tokens {
		if t.tokenType == tkSeparator && t.value == ";" {
			if s := strings.TrimSpace(l.src[start:t.end]); s != "" {
				statements = append(statements, s)
			}
			start = t.end
		}
	}
	if rest := strings.TrimSpace(l.src[start:]); rest != "" {
		statements = append(statements, rest)
	}
	return statements
}

// IsTerminated reports whether the last statement ends with a semicolon
// meaning the input is complete and ready to be parsed.
func IsTerminated(statements []string) bool {
	if len(statements) == 0 {
		return false
	}
	return strings.HasSuffix(statements[len(statements)-1], ";")
}

func (l *lexer) getToken() token {
	l.start = l.end
	r := l.peek(l.start)
	switch {
	case l.isWhiteSpace(r):
		return l.scanWhiteSpace()
	case l.isLetter(r):
		return l.scanWord()
	case l.isDigit(r):
		return l.scanDigit()
	case l.isAsterisk(r):
		return l.scanAsterisk()
	case l.isSeparator(r):
		return l.scanSeparator()
	case l.isOperator(r):
		return l.scanOperator()
	case l.isSingleQuote(r):
		return l.scanLiteral()
	}
	return l.token(tkEOF, "")
}

func (l *lexer) token(t tokenType, value string) token {
	return token{tokenType: t, value: value, start: l.start, end: l.end}
}

func (l *lexer) peek(pos int) rune {
	if len(l.src) <= pos {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.src[pos:])
	return r
}

func (l *lexer) next() rune {
	r := l.peek(l.end + 1)
	l.end = l.end + 1
	return r
}

func (l *lexer) scanWhiteSpace() token {
	l.next()
	for l.isWhiteSpace(l.peek(l.end)) {
		l.next()
	}
	return l.token(tkWhitespace, " ")
}

func (l *lexer) scanWord() token {
	l.next()
	for l.isLetter(l.peek(l.end)) || l.isDigit(l.peek(l.end)) || l.isUnderscore(l.peek(l.end)) {
		l.next()
	}
	value := l.src[l.start:l.end]
	if l.isKeyword(value) {
		return l.token(tkKeyword, strings.ToUpper(value))
	}
	return l.token(tkIdentifier, value)
}

func (l *lexer) scanDigit() token {
	l.next()
	for l.isDigit(l.peek(l.end)) {
		l.next()
	}
	return l.token(tkNumeric, l.src[l.start:l.end])
}

func (l *lexer) scanAsterisk() token {
	l.next()
	return l.token(tkPunctuator, l.src[l.start:l.end])
}

func (l *lexer) scanSeparator() token {
	l.next()
	return l.token(tkSeparator, l.src[l.start:l.end])
}

func (l *lexer) scanOperator() token {
	first := l.peek(l.end)
	l.next()
	if l.peek(l.end) == '=' && (first == '<' || first == '>' || first == '!') {
		l.next()
	}
	return l.token(tkOperator, l.src[l.start:l.end])
}

func (l *lexer) scanLiteral() token {
	l.next()
	for l.peek(l.end) != 0 && !l.isSingleQuote(l.peek(l.end)) {
		l.next()
	}
	if l.isSingleQuote(l.peek(l.end)) {
		l.next()
	}
	return l.token(tkLiteral, l.src[l.start:l.end])
}

func (*lexer) isWhiteSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

func (*lexer) isLetter(r rune) bool {
	return unicode.IsLetter(r)
}

func (*lexer) isUnderscore(r rune) bool {
	return r == '_'
}

func (*lexer) isAsterisk(r rune) bool {
	return r == '*'
}

func (*lexer) isDigit(r rune) bool {
	return unicode.IsDigit(r)
}

func (*lexer) isSeparator(r rune) bool {
	return r == ',' || r == '(' || r == ')' || r == ';' || r == '.'
}

func (*lexer) isOperator(r rune) bool {
	return r == '=' || r == '!' || r == '<' || r == '>'
}

func (*lexer) isSingleQuote(r rune) bool {
	return r == '\''
}
