// repl (read eval print loop) adapts engine to the command line.
package repl

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/quilldb/quill/coltype"
	"github.com/quilldb/quill/engine"
	"github.com/quilldb/quill/planner"
	"golang.org/x/term"
)

const (
	// emptyHeaderValue is printed when a field has no name.
	emptyHeaderValue = "<anonymous>"
	// prompt is the prompt.
	prompt = "quill> "
	// promptContinued is the prompt when it is pending termination for example
	// by a semi colon.
	promptContinued = "...  > "
)

type repl struct {
	engine   *engine.Engine
	terminal *term.Terminal
}

func New(e *engine.Engine) *repl {
	r := &repl{
		engine:   e,
		terminal: term.NewTerminal(os.Stdin, prompt),
	}
	r.loadHistory()
	return r
}

func (r *repl) Run() {
	r.writeLn("Welcome to quill. Type .exit to exit")

	// Handling kill signals works under two methods for the REPL. When the
	// terminal is in raw mode the signals are caught by readline as bytes. When
	// the terminal is not in raw mode the signals are caught by the following
	// channel.
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		r.exitGracefully()
	}()

	previousInput := ""
	for {
		line := r.readLine(previousInput)
		input := previousInput + line
		if len(input) == 0 {
			continue
		}
		if input[0] == '.' {
			r.runCommand(input)
			continue
		}

		statements := r.engine.Tokenize(input)
		terminated := r.engine.IsTerminated(statements)
		if !terminated {
			previousInput = input + "\n"
			continue
		}
		previousInput = ""
		for _, statement := range statements {
			result := r.engine.Compile(statement)
			if result.Err != nil {
				r.writeError(statement, result.Err)
				continue
			}
			if result.Text != "" {
				r.writeLn(result.Text)
			} else {
				r.writeLn(r.printSchema(result.Plan.Schema()))
			}
			r.writeLn("Time: " + result.Duration.String())
		}
	}
}

func (r *repl) runCommand(input string) {
	switch input {
	case ".exit":
		r.exitGracefully()
	case ".tables":
		r.writeLn(r.printTables())
	default:
		r.writeLn("Command not supported")
	}
}

func (r *repl) readLine(previousInput string) string {
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		panic(err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)
	if previousInput == "" {
		r.terminal.SetPrompt(prompt)
	} else {
		r.terminal.SetPrompt(promptContinued)
	}
	line, err := r.terminal.ReadLine()
	if err != nil {
		if err == io.EOF {
			term.Restore(int(os.Stdin.Fd()), oldState)
			r.exitGracefully()
		}
		panic("err reading line: " + err.Error())
	}
	return line
}

func (r *repl) writeLn(text string) {
	r.terminal.Write(([]byte)(text + "\n"))
}

func (r *repl) writeError(statement string, err error) {
	r.terminal.Write(r.terminal.Escape.Red)
	diagnostics := planner.Diagnostics(err)
	if len(diagnostics) == 0 {
		r.writeLn("Err: " + err.Error())
	}
	for _, d := range diagnostics {
		r.writeLn(d.Render(statement))
	}
	r.terminal.Write(r.terminal.Escape.Reset)
}

// printSchema renders the output fields of a compiled plan as a table.
func (r *repl) printSchema(s *planner.Schema) string {
	sb := &strings.Builder{}
	table := tablewriter.NewWriter(sb)
	table.SetHeader([]string{"column", "type"})
	for _, f := range s.Fields {
		name := f.Name
		if name == "" {
			name = emptyHeaderValue
		}
		table.Append([]string{name, coltype.String(f.Type)})
	}
	table.Render()
	return sb.String()
}

func (r *repl) printTables() string {
	sb := &strings.Builder{}
	table := tablewriter.NewWriter(sb)
	table.SetHeader([]string{"table", "columns"})
	for _, t := range r.engine.Tables() {
		cols := make([]string, 0, len(t.Columns))
		for _, c := range t.Columns {
			cols = append(cols, c.Name)
		}
		table.Append([]string{t.Name, strings.Join(cols, ", ")})
	}
	table.Render()
	return sb.String()
}

func (r *repl) exitGracefully() {
	r.saveHistory()
	os.Exit(0)
}

func (r *repl) loadHistory() {
	p, err := r.getHistoryPath()
	if err != nil {
		r.writeLn("failed to get history path " + err.Error())
		return
	}
	contents, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		r.writeLn("failed to load history " + err.Error())
		return
	}
	lines := strings.Split((string)(contents), "\n")
	slices.Reverse(lines)
	for _, line := range lines {
		if line == "" {
			continue
		}
		r.terminal.History.Add(line)
	}
}

func (r *repl) saveHistory() {
	history := []byte{}
	for i := range r.terminal.History.Len() {
		str_entry := r.terminal.History.At(i)
		byte_entry := ([]byte)(str_entry + "\n")
		history = append(history, byte_entry...)
	}
	p, err := r.getHistoryPath()
	if err != nil {
		r.writeLn("failed to get history path for saving " + err.Error())
		return
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		r.writeLn("failed to open history file for saving " + err.Error())
		return
	}
	defer f.Close()
	err = f.Truncate(0)
	if err != nil {
		r.writeLn("failed to overwrite history " + err.Error())
		return
	}
	_, err = f.Write(history)
	if err != nil {
		r.writeLn("failed to write history " + err.Error())
		return
	}
}

func (r *repl) getHistoryPath() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return dir + "/.quill_history", nil
}
