package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// ViewWidth is the column width text is centered and wrapped in.
const ViewWidth = 60

const clearSequence = "\x1b[2J\x1b[H"

type styles struct {
	title      lipgloss.Style
	art        lipgloss.Style
	optionKey  lipgloss.Style
	optionText lipgloss.Style
	prompt     lipgloss.Style
	err        lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Foreground(lipgloss.Color("6")). // cyan
			Bold(true),
		art: r.NewStyle().
			Foreground(lipgloss.Color("213")), // pink
		optionKey: r.NewStyle().
			Foreground(lipgloss.Color("3")). // yellow
			Bold(true),
		optionText: r.NewStyle().
			Foreground(lipgloss.Color("7")), // light grey
		prompt: r.NewStyle().
			Foreground(lipgloss.Color("159")), // pale blue
		err: r.NewStyle().
			Foreground(lipgloss.Color("196")), // red
	}
}

// Console is the line-oriented terminal the menus talk to.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
	styles styles
	done   <-chan struct{}
}

// New wraps the given streams. Colors are only emitted when out is a terminal.
func New(in io.Reader, out, errOut io.Writer) *Console {
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// Out is the writer menus render to.
func (c *Console) Out() io.Writer {
	return c.out
}

// StopOn makes pending and later reads report exhausted input once ctx is
// done. A read abandoned this way is left blocked on the underlying reader.
func (c *Console) StopOn(ctx context.Context) {
	c.done = ctx.Done()
}

// ReadRawLine reads one line without printing a prompt. ok is false once the
// input is exhausted or the console was stopped.
func (c *Console) ReadRawLine() (string, bool, error) {
	if c.done == nil {
		return c.readRawLine()
	}
	select {
	case <-c.done:
		return "", false, nil
	default:
	}

	type result struct {
		line string
		ok   bool
		err  error
	}
	read := make(chan result, 1)
	go func() {
		line, ok, err := c.readRawLine()
		read <- result{line, ok, err}
	}()

	select {
	case r := <-read:
		return r.line, r.ok, r.err
	case <-c.done:
		return "", false, nil
	}
}

func (c *Console) readRawLine() (line string, ok bool, err error) {
	line, err = c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", false, nil
		}
	}
	return line, true, nil
}

// ReadLine prints the input prompt and returns the trimmed line.
func (c *Console) ReadLine() (string, bool, error) {
	if _, err := fmt.Fprint(c.out, c.styles.prompt.Render(">")+" "); err != nil {
		return "", false, fmt.Errorf("write prompt: %w", err)
	}
	line, ok, err := c.ReadRawLine()
	if err != nil || !ok {
		return "", ok, err
	}
	return strings.TrimSpace(line), true, nil
}

// ReadChoice reads a menu key: the first non-whitespace rune of the line,
// lowercased. A blank line counts as no choice, like exhausted input.
func (c *Console) ReadChoice() (rune, bool, error) {
	line, ok, err := c.ReadLine()
	if err != nil || !ok {
		return 0, false, err
	}
	choice, ok := ParseChoice(line)
	return choice, ok, nil
}

// ParseChoice extracts the menu key from a line of input.
func ParseChoice(line string) (rune, bool) {
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return unicode.ToLower(r), true
		}
	}
	return 0, false
}

// WaitForEnter shows a centered prompt and blocks for one line.
func (c *Console) WaitForEnter(prompt string) (bool, error) {
	c.centered(prompt, c.styles.prompt)
	_, ok, err := c.ReadRawLine()
	return ok, err
}

// Pause is the gate shown after actions that print their result.
func (c *Console) Pause() (bool, error) {
	c.Println("")
	return c.WaitForEnter("Press ENTER to continue...")
}

// Clear wipes the screen and homes the cursor.
func (c *Console) Clear() {
	fmt.Fprint(c.out, clearSequence)
}

// Heading prints a centered title.
func (c *Console) Heading(title string) {
	c.centered(title, c.styles.title)
}

// Art prints every line of a banner centered.
func (c *Console) Art(art string) {
	for _, line := range strings.Split(strings.Trim(art, "\n"), "\n") {
		c.centered(line, c.styles.art)
	}
}

// Option prints a menu entry such as "[G] Go to the graveyard".
func (c *Console) Option(key, description string) {
	fmt.Fprintf(c.out, "%s%s%s %s\n",
		c.styles.optionText.Render("["),
		c.styles.optionKey.Render(key),
		c.styles.optionText.Render("]"),
		c.styles.optionText.Render(description))
}

// Label prints "Label: value" with the label styled like option text.
func (c *Console) Label(label, value string) {
	if value == "" {
		fmt.Fprintln(c.out, c.styles.optionText.Render(label+":"))
		return
	}
	fmt.Fprintf(c.out, "%s %s\n", c.styles.optionText.Render(label+":"), value)
}

// Notice prints a centered message in the prompt color.
func (c *Console) Notice(text string) {
	c.centered(text, c.styles.prompt)
}

// Highlight prints a left-aligned message in the title color.
func (c *Console) Highlight(text string) {
	fmt.Fprintln(c.out, c.styles.title.Render(text))
}

// Info prints a left-aligned message in the prompt color.
func (c *Console) Info(text string) {
	fmt.Fprintln(c.out, c.styles.prompt.Render(text))
}

// Println writes plain text.
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

// Hint prints guidance wrapped to the view width.
func (c *Console) Hint(text string) {
	fmt.Fprintln(c.out, wordwrap.String(text, ViewWidth))
}

// Errorf reports a problem on the error stream.
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintln(c.errOut, c.styles.err.Render(fmt.Sprintf(format, args...)))
}

// centered prints text padded to the middle of the view. Blank text prints an
// empty line.
func (c *Console) centered(text string, style lipgloss.Style) {
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(c.out)
		return
	}
	fmt.Fprintln(c.out, padding(text)+style.Render(text))
}

func padding(text string) string {
	width := lipgloss.Width(text)
	if width >= ViewWidth {
		return ""
	}
	return strings.Repeat(" ", (ViewWidth-width)/2)
}
