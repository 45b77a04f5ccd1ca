package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex(t *testing.T) {
	cases := []struct {
		sql    string
		expect []token
	}{
		{
			sql: "SELECT * FROM foo",
			expect: []token{
				{tkKeyword, "SELECT", 0, 6},
				{tkWhitespace, " ", 6, 7},
				{tkPunctuator, "*", 7, 8},
				{tkWhitespace, " ", 8, 9},
				{tkKeyword, "FROM", 9, 13},
				{tkWhitespace, " ", 13, 14},
				{tkIdentifier, "foo", 14, 17},
			},
		},
		{
			sql: "select 1;",
			expect: []token{
				{tkKeyword, "SELECT", 0, 6},
				{tkWhitespace, " ", 6, 7},
				{tkNumeric, "1", 7, 8},
				{tkSeparator, ";", 8, 9},
			},
		},
		{
			sql: "SELECT a UNION ALL BY NAME SELECT b",
			expect: []token{
				{tkKeyword, "SELECT", 0, 6},
				{tkWhitespace, " ", 6, 7},
				{tkIdentifier, "a", 7, 8},
				{tkWhitespace, " ", 8, 9},
				{tkKeyword, "UNION", 9, 14},
				{tkWhitespace, " ", 14, 15},
				{tkKeyword, "ALL", 15, 18},
				{tkWhitespace, " ", 18, 19},
				{tkKeyword, "BY", 19, 21},
				{tkWhitespace, " ", 21, 22},
				{tkKeyword, "NAME", 22, 26},
				{tkWhitespace, " ", 26, 27},
				{tkKeyword, "SELECT", 27, 33},
				{tkWhitespace, " ", 33, 34},
				{tkIdentifier, "b", 34, 35},
			},
		},
		{
			sql: "VALUES (1, 'it''s')",
			expect: []token{
				{tkKeyword, "VALUES", 0, 6},
				{tkWhitespace, " ", 6, 7},
				{tkSeparator, "(", 7, 8},
				{tkNumeric, "1", 8, 9},
				{tkSeparator, ",", 9, 10},
				{tkWhitespace, " ", 10, 11},
				{tkLiteral, "'it'", 11, 15},
				{tkLiteral, "'s'", 15, 18},
				{tkSeparator, ")", 18, 19},
			},
		},
		{
			sql: "WHERE a <= 1",
			expect: []token{
				{tkKeyword, "WHERE", 0, 5},
				{tkWhitespace, " ", 5, 6},
				{tkIdentifier, "a", 6, 7},
				{tkWhitespace, " ", 7, 8},
				{tkOperator, "<=", 8, 10},
				{tkWhitespace, " ", 10, 11},
				{tkNumeric, "1", 11, 12},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.sql, func(t *testing.T) {
			got := NewLexer(c.sql).Lex()
			assert.Equal(t, c.expect, got)
		})
	}
}

func TestLexUnterminatedLiteral(t *testing.T) {
	got := NewLexer("'never ends").Lex()
	require.Len(t, got, 1)
	assert.Equal(t, tkLiteral, got[0].tokenType)
}

func TestToStatements(t *testing.T) {
	statements := NewLexer("SELECT 1; SELECT 2;").ToStatements()
	require.Len(t, statements, 2)
	assert.Equal(t, "SELECT 1;", statements[0])
	assert.Equal(t, "SELECT 2;", statements[1])
}

func TestToStatementsUnterminatedTail(t *testing.T) {
	statements := NewLexer("SELECT 1; SELECT 2").ToStatements()
	require.Len(t, statements, 2)
	assert.Equal(t, "SELECT 2", statements[1])
}

func TestIsTerminated(t *testing.T) {
	assert.True(t, IsTerminated([]string{"SELECT 1;"}))
	assert.False(t, IsTerminated([]string{"SELECT 1"}))
	assert.False(t, IsTerminated([]string{}))
}
