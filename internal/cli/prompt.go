package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// fieldPrompter collects raw field strings from an interactive session. It
// only reads input; validation happens afterwards so the prompting I/O stays
// out of the core.
type fieldPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newFieldPrompter(in io.Reader, out io.Writer) *fieldPrompter {
	return &fieldPrompter{in: bufio.NewReader(in), out: out}
}

// ask prints a prompt and reads one line, trimmed of surrounding whitespace.
// A hint, when given, is shown in brackets after the label.
func (p *fieldPrompter) ask(label, hint string) (string, error) {
	if hint != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, hint)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
