package internal

import (
	"io"
	"os"
	"time"

	"github.com/labstack/gommon/bytes"
	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Program is a parsed source file. It can be run any number of times; each
// run starts from a fresh global environment.
type Program struct {
	state *interpreterState
}

// Parse scans and parses source. name is used in error positions.
func Parse(name, source string) (*Program, error) {
	state := &interpreterState{
		name:   name,
		source: source,
	}
	if err := newLexer(state).scan(); err != nil {
		return nil, err
	}
	parser := &parser{state: state}
	if err := parser.parse(); err != nil {
		return nil, err
	}
	return &Program{state: state}, nil
}

// Run evaluates the program with the default builtins. print writes to p.
func (p *Program) Run(printer IPrinter) error {
	globals := newEnv(nil)
	defineGlobals(globals, printer)
	_, err := newExec(p.state, globals).interpret()
	return err
}

// Tree returns the syntax tree as an S-expression.
func (p *Program) Tree() string {
	return printTree(p.state.root)
}

// Runner drives a source file through parsing and evaluation, logging each
// phase and reporting failures through its printer.
type Runner struct {
	Printer IPrinter
	Log     *logrus.Entry
	Color   *color.Color
}

// NewRunner returns a Runner that logs to the standard logrus logger and
// reports errors without colours.
func NewRunner(p IPrinter) *Runner {
	c := color.New()
	c.Disable()
	return &Runner{
		Printer: p,
		Log:     logrus.NewEntry(logrus.StandardLogger()),
		Color:   c,
	}
}

// Run parses and evaluates source. Failures are reported and returned.
func (r *Runner) Run(absPath, source string) error {
	log := r.Log.WithField("source", absPath)
	log.WithField("size", bytes.Format(int64(len(source)))).Debug("parsing")

	start := time.Now()
	program, err := Parse(absPath, source)
	if err != nil {
		r.Report(err)
		return err
	}
	log.WithField("elapsed", time.Since(start)).Debug("parsed")

	start = time.Now()
	err = program.Run(r.Printer)
	log.WithField("elapsed", time.Since(start)).Debug("evaluated")
	if err != nil {
		r.Report(err)
	}
	return err
}

// Report prints err on stderr through the runner's printer.
func (r *Runner) Report(err error) {
	r.Printer.Fprintln(os.Stderr, r.Color.Red("Error:"), err.Error())
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(absPath, source string, p IPrinter) bool {
	return NewRunner(p).Run(absPath, source) == nil
}
