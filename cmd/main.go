package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kievzenit/tiny/internal/compiler"
	"github.com/kievzenit/tiny/internal/compiler_errors"
	"github.com/kievzenit/tiny/internal/emitter"
	"github.com/kievzenit/tiny/internal/lexer"
	"github.com/kievzenit/tiny/internal/parser"
	"github.com/kievzenit/tiny/internal/semantic_analyzer"
	"github.com/kievzenit/tiny/internal/vm"
	"github.com/sanity-io/litter"
)

type options struct {
	mode        compiler.Mode
	noTypecheck bool
	emitLLVM    bool
	quiet       bool
}

func main() {
	modeFlag := flag.String("mode", compiler.Discard.String(), "compilation mode: discard or yield")
	noTypecheck := flag.Bool("no-typecheck", false, "skip static type checking")
	emitLLVM := flag.Bool("emit-llvm", false, "print LLVM IR instead of running the program")
	quiet := flag.Bool("quiet", false, "print only the result")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <expression>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	eh := compiler_errors.NewErrorHandler(os.Stderr)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	mode, err := compiler.ParseMode(*modeFlag)
	if err != nil {
		eh.AddError(compiler_errors.FromError(err))
	}

	if !eh.HasErrors() {
		opts := options{
			mode:        mode,
			noTypecheck: *noTypecheck,
			emitLLVM:    *emitLLVM,
			quiet:       *quiet,
		}
		if err := execute(flag.Arg(0), opts, os.Stdout); err != nil {
			eh.AddError(compiler_errors.FromError(err))
		}
	}

	if eh.HasErrors() {
		eh.FailNow()
	}
}

// execute runs every pipeline stage on source, printing each stage's
// artifact to out. The first failing stage stops the pipeline.
func execute(source string, opts options, out io.Writer) error {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return err
	}
	if !opts.quiet {
		for _, token := range tokens {
			fmt.Fprintln(out, token.String())
		}
	}

	stmt, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	if !opts.quiet {
		fmt.Fprintln(out, litter.Sdump(stmt))
	}

	if opts.emitLLVM {
		e := emitter.NewEmitter(stmt)
		defer e.Dispose()

		module, err := e.Emit()
		if err != nil {
			return err
		}
		fmt.Fprint(out, module.String())
		return nil
	}

	if !opts.noTypecheck {
		staticType, err := semantic_analyzer.Typecheck(stmt)
		if err != nil {
			return err
		}
		if !opts.quiet {
			fmt.Fprintf(out, "type: %s\n", staticType.Type())
		}
	}

	code, err := compiler.Compile(stmt, opts.mode)
	if err != nil {
		return err
	}
	if !opts.quiet {
		fmt.Fprint(out, code.String())
	}

	machine := vm.NewVM(code)
	result, err := machine.Run()
	if err != nil {
		return err
	}

	if result == nil {
		fmt.Fprintln(out, "result: <none>")
	} else {
		fmt.Fprintf(out, "result: %s\n", result)
	}
	if discarded, ok := machine.LastPopped(); ok && opts.mode == compiler.Discard {
		fmt.Fprintf(out, "discarded: %s\n", discarded)
	}

	return nil
}
