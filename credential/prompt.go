package credential

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/tmdb-cli/tmdb/util"
)

// Prompter asks the user for one line of input.
type Prompter interface {
	Ask(message string) (string, error)
}

// NewPrompter returns an interactive survey prompt when stdin is a terminal,
// and a plain line reader over stdin otherwise.
func NewPrompter() Prompter {
	if util.IsTerminal(os.Stdin) {
		return surveyPrompter{}
	}
	return NewLinePrompter(os.Stdin, os.Stdout)
}

type surveyPrompter struct{}

func (surveyPrompter) Ask(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message}, &answer, survey.WithValidator(survey.Required))
	return answer, err
}

// LinePrompter prints the message and reads a single line.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads answers from in and writes prompts to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask prints the message followed by a space and returns the line without its terminator.
func (p *LinePrompter) Ask(message string) (string, error) {
	if _, err := fmt.Fprintf(p.out, "%s ", message); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
