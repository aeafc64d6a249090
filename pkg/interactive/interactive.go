package interactive

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Reader func() (string, error)
type Action func() error

type Actions []Action

func (a Actions) Run() error {
	for _, act := range a {
		if err := act(); err != nil {
			return err
		}
	}
	return nil
}

// Prompter asks questions on out and reads the answers from in.
type Prompter struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, reader: bufio.NewReader(in)}
}

// NewAction asks prompt and stores a non-empty answer in out. An empty answer
// leaves out as is, so it should hold the default.
func (p *Prompter) NewAction(fn Reader, prompt string, out *string) Action {
	return func() error {
		q := prompt
		if len(*out) > 0 {
			q = fmt.Sprintf("%s (default: %s)", prompt, *out)
		}

		fmt.Fprint(p.out, q+": ")

		data, err := fn()
		if err != nil {
			return err
		}

		if len(data) == 0 {
			return nil
		}

		*out = data
		return nil
	}
}

// String reads one line. End of input is an empty answer.
func (p *Prompter) String() Reader {
	return func() (string, error) {
		data, err := p.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return strings.TrimSpace(data), nil
	}
}

// Password reads a line without echo when in is a terminal.
func (p *Prompter) Password() Reader {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.String()
	}

	return func() (string, error) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}

		return strings.TrimSpace(string(b)), nil
	}
}
