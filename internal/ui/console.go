package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fr4nk3nst1ner/vacancysleuth/internal/utils"
	"github.com/pterm/pterm"
)

const pauseText = "Для продолжения нажмите Enter"

// Console reads answers line by line and writes prompts and menus
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole reads answers from in and writes to out
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Writer returns the console output
func (c *Console) Writer() io.Writer { return c.out }

// Prompt prints label and returns the next line without the trailing
// newline. io.EOF is returned only when input ended before any text.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// PromptInt reads a number; anything that is not an integer yields 0
func (c *Console) PromptInt(label string) (int, error) {
	answer, err := c.Prompt(label)
	if err != nil {
		return 0, err
	}
	return utils.ParseMenuInt(answer), nil
}

// Choose prints a numbered menu and returns the raw answer
func (c *Console) Choose(options ...string) (string, error) {
	for i, option := range options {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, option)
	}
	answer, err := c.Prompt("Выберите опцию: ")
	return strings.TrimSpace(answer), err
}

// Pause waits for Enter
func (c *Console) Pause() error {
	_, err := c.Prompt(pauseText + "\n")
	return err
}

// Println writes a plain line
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Success writes a line with the success prefix
func (c *Console) Success(format string, a ...any) {
	pterm.Success.WithWriter(c.out).Printfln(format, a...)
}

// Warning writes a line with the warning prefix
func (c *Console) Warning(format string, a ...any) {
	pterm.Warning.WithWriter(c.out).Printfln(format, a...)
}

// Error writes a line with the error prefix
func (c *Console) Error(format string, a ...any) {
	pterm.Error.WithWriter(c.out).Printfln(format, a...)
}
