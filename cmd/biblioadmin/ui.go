package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// notifier prints transient notices to the terminal, the closest equivalent of
// the toast popups an admin UI would show.
type notifier struct {
	out io.Writer
}

func (n *notifier) Success(message string) { fmt.Fprintln(n.out, "[ok] "+message) }
func (n *notifier) Warning(message string) { fmt.Fprintln(n.out, "[warn] "+message) }
func (n *notifier) Error(message string)   { fmt.Fprintln(n.out, "[error] "+message) }

// prompter reads line-oriented input from the terminal. It also implements the
// confirmation prompt that gates deletes.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *prompter) Confirm(message string) bool {
	answer := p.line(message + " [y/N]: ")
	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

func (p *prompter) line(label string) string {
	fmt.Fprint(p.out, label)
	text, err := p.in.ReadString('\n')
	if err != nil && text == "" {
		return ""
	}
	return strings.TrimSpace(text)
}

// lineDefault prompts for a text field, keeping the current value on blank
// input.
func (p *prompter) lineDefault(label, current string) string {
	if current != "" {
		label = fmt.Sprintf("%s [%s]", label, current)
	}
	text := p.line(label + ": ")
	if text == "" {
		return current
	}
	return text
}

// id prompts for a single record id. A blank or unparseable answer reports
// false.
func (p *prompter) id(label string) (int64, bool) {
	text := p.line(label)
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil || id < 1 {
		fmt.Fprintf(p.out, "invalid id %q\n", text)
		return 0, false
	}
	return id, true
}

// idDefault prompts for a reference id, keeping the current value on blank
// input.
func (p *prompter) idDefault(label string, current int64) int64 {
	if current != 0 {
		label = fmt.Sprintf("%s [%d]", label, current)
	}
	text := p.line(label + ": ")
	if text == "" {
		return current
	}
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		fmt.Fprintf(p.out, "invalid id %q, keeping %d\n", text, current)
		return current
	}
	return id
}

// idsDefault prompts for a comma-separated id list, keeping the current values
// on blank input.
func (p *prompter) idsDefault(label string, current []int64) []int64 {
	if len(current) > 0 {
		parts := make([]string, 0, len(current))
		for _, id := range current {
			parts = append(parts, strconv.FormatInt(id, 10))
		}
		label = fmt.Sprintf("%s [%s]", label, strings.Join(parts, ","))
	}
	text := p.line(label + ": ")
	if text == "" {
		return current
	}
	var ids []int64
	for _, part := range strings.Split(text, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			fmt.Fprintf(p.out, "invalid id %q, keeping current values\n", part)
			return current
		}
		ids = append(ids, id)
	}
	return ids
}
