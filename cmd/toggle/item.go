package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tailored-agentic-units/toggle/toggle"
)

type photo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// item binds a photo toggle to a text display: every notification redraws
// the label line.
type item struct {
	toggle *toggle.Toggle[photo]
	out    io.Writer
}

func newItem(cfg *toggle.Config, state string, out io.Writer) (*item, error) {
	t, err := toggle.NewFromConfig[photo](cfg, state)
	if err != nil {
		return nil, err
	}

	it := &item{toggle: t, out: out}
	t.OnToggle().Subscribe(func(s toggle.State[photo]) {
		fmt.Fprintln(it.out, it.render(s))
	})
	return it, nil
}

func (it *item) render(s toggle.State[photo]) string {
	label := "Not Selected"
	mark := " "
	if s.Selected {
		label = "Selected"
		mark = "x"
	}
	return fmt.Sprintf("[%s] %s (%s) %s", mark, s.Value.Name, label, s.Value.URL)
}

// run applies one command per input line until EOF or "quit". Rejected
// commands are logged and the loop continues.
func (it *item) run(in io.Reader, logger *slog.Logger) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cmd, arg, _ := strings.Cut(line, " ")
		if cmd == "quit" {
			return nil
		}

		if err := it.apply(cmd, strings.TrimSpace(arg)); err != nil {
			logger.Error("command rejected", "command", cmd, "error", err)
		}
	}
	return scanner.Err()
}

func (it *item) apply(cmd, arg string) error {
	switch cmd {
	case "toggle":
		it.toggle.Toggle()
	case "select":
		it.toggle.Select()
	case "deselect":
		it.toggle.Deselect()
	case "selected":
		var v any
		if err := json.Unmarshal([]byte(arg), &v); err != nil {
			return fmt.Errorf("failed to parse selected: %w", err)
		}
		return it.toggle.SetSelected(v)
	case "value":
		var p photo
		if err := json.Unmarshal([]byte(arg), &p); err != nil {
			return fmt.Errorf("failed to parse value: %w", err)
		}
		it.toggle.SetValue(p)
	case "state":
		return it.toggle.SetState(json.RawMessage(arg))
	case "show":
		fmt.Fprintln(it.out, it.render(it.toggle.State()))
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
	return nil
}
