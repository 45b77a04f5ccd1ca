// engine serves as an interface for the planner where raw SQL goes in and
// convenient data structures come out. engine is intended to be consumed by
// things like a repl (read eval print loop), a program, or a transport
// protocol
package engine

import (
	"time"

	"github.com/pkg/errors"
	"github.com/quilldb/quill/catalog"
	"github.com/quilldb/quill/coltype"
	"github.com/quilldb/quill/compiler"
	"github.com/quilldb/quill/planner"
	"github.com/rs/zerolog"
)

type engineCatalog interface {
	GetColumns(tableName string) ([]string, error)
	GetColumnType(tableName string, columnName string) (coltype.CT, error)
	TableExists(tableName string) bool
	Tables() []catalog.Table
}

// Result holds the outcome of compiling a single statement.
type Result struct {
	// Plan is the logical plan when compilation succeeded.
	Plan *planner.QueryPlan
	// Text holds the plan rendered as a tree when the statement asked for
	// `EXPLAIN QUERY PLAN`.
	Text string
	// Err is the compilation failure if any.
	Err error
	// Duration is the time compilation took.
	Duration time.Duration
}

// Engine compiles SQL statements to logical query plans against a catalog.
type Engine struct {
	catalog engineCatalog
	cfg     planner.Config
	log     zerolog.Logger
}

func New(c engineCatalog, cfg planner.Config, log zerolog.Logger) *Engine {
	return &Engine{
		catalog: c,
		cfg:     cfg,
		log:     log,
	}
}

// Tables lists the tables available for planning.
func (e *Engine) Tables() []catalog.Table {
	return e.catalog.Tables()
}

// Compile converts a single SQL statement to a logical query plan.
func (e *Engine) Compile(sql string) Result {
	start := time.Now()
	result := e.compile(sql)
	result.Duration = time.Since(start)
	ev := e.log.Debug().
		Str("sql", sql).
		Dur("duration", result.Duration)
	if result.Err != nil {
		ev.Err(result.Err)
	}
	ev.Msg("compiled statement")
	return result
}

func (e *Engine) compile(sql string) Result {
	tokens := compiler.NewLexer(sql).Lex()
	statement, err := compiler.NewParser(tokens).Parse()
	if err != nil {
		return Result{Err: errors.Wrap(err, "parse")}
	}
	qs, ok := statement.(*compiler.QueryStmt)
	if !ok {
		return Result{Err: errors.New("statement not supported")}
	}
	ctx := planner.NewContext(e.cfg)
	plan, err := planner.NewQuery(e.catalog, qs, ctx).QueryPlan()
	if err != nil {
		return Result{Err: err}
	}
	result := Result{Plan: plan}
	if plan.ExplainQueryPlan {
		result.Text = plan.ToString()
	}
	return result
}

// Tokenize splits raw input into individual statement strings.
func (e *Engine) Tokenize(input string) []string {
	return compiler.NewLexer(input).ToStatements()
}

// IsTerminated reports whether the statements end with a terminating
// semi colon meaning the input is complete.
func (e *Engine) IsTerminated(statements []string) bool {
	return compiler.IsTerminated(statements)
}
