package compiler_errors

import (
	"fmt"
	"io"
	"os"
)

type CompilerError interface {
	GetMessage() string
}

type ErrorHandler interface {
	AddError(err CompilerError)
	HasErrors() bool
	FailNow()
}

type CompilerErrorHandler struct {
	errors []CompilerError
	writer io.Writer
	exit   func(code int)
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return NewErrorHandlerWithExit(outputWriter, os.Exit)
}

// NewErrorHandlerWithExit is NewErrorHandler with a replaceable exit
// function, so FailNow can be observed without terminating the process.
func NewErrorHandlerWithExit(outputWriter io.Writer, exit func(code int)) ErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
		writer: outputWriter,
		exit:   exit,
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

func (eh *CompilerErrorHandler) FailNow() {
	fmt.Fprintln(eh.writer, "Build failed with errors:")

	for _, err := range eh.errors {
		fmt.Fprintf(eh.writer, "ERROR: %s\n", err.GetMessage())
	}

	eh.exit(1)
}

type plainError struct {
	err error
}

func (e *plainError) GetMessage() string {
	return e.err.Error()
}

// FromError adapts a plain error to CompilerError. Errors that already
// implement CompilerError are returned as is.
func FromError(err error) CompilerError {
	if ce, ok := err.(CompilerError); ok {
		return ce
	}

	return &plainError{err: err}
}
