package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/emzola/biblioadmin/controller"
	"github.com/emzola/biblioadmin/data"
)

// entityPage runs the interactive loop for one simple catalog page: render the
// cached list, then apply add/edit/delete/details commands through the page's
// controller until the user goes back.
type entityPage[T data.Entity] struct {
	label   string
	plural  string
	ctrl    *controller.Controller[T]
	header  string
	row     func(T) string
	details func(T) string
	fill    func(*prompter, *T)
}

func (pg *entityPage[T]) run(ctx context.Context, p *prompter) error {
	if err := pg.ctrl.LoadInitial(ctx); err != nil {
		return err
	}
	for {
		pg.render(p.out)
		printMenu(p.out)
		switch cmd := p.line("> "); cmd {
		case "add":
			pg.fill(p, pg.ctrl.Draft())
			pg.ctrl.SubmitCreate(ctx)
		case "edit":
			id, ok := p.id("ID: ")
			if !ok {
				continue
			}
			record, found := findByID(pg.ctrl.Items(), id)
			if !found {
				fmt.Fprintf(p.out, "no %s with id %d\n", pg.label, id)
				continue
			}
			pg.ctrl.BeginEdit(record)
			pg.fill(p, pg.ctrl.Editing())
			if pg.ctrl.SubmitUpdate(ctx) != nil {
				pg.ctrl.CancelEdit()
			}
		case "delete":
			id, ok := p.id("ID: ")
			if !ok {
				continue
			}
			pg.ctrl.Remove(ctx, id)
		case "details":
			id, ok := p.id("ID: ")
			if !ok {
				continue
			}
			pg.ctrl.ToggleDetails(id)
		case "list":
			// The next loop iteration re-renders.
		case "back", "exit":
			return nil
		default:
			fmt.Fprintf(p.out, "unknown command %q\n", cmd)
		}
	}
}

func (pg *entityPage[T]) render(out io.Writer) {
	items := pg.ctrl.Items()
	fmt.Fprintln(out)
	if len(items) == 0 {
		fmt.Fprintf(out, "No %s yet.\n", pg.plural)
		return
	}
	fmt.Fprintln(out, pg.header)
	fmt.Fprintln(out, strings.Repeat("-", len(pg.header)))
	for _, item := range items {
		fmt.Fprintln(out, pg.row(item))
		if pg.ctrl.DetailsVisible(item.EntityID()) {
			fmt.Fprintln(out, "      "+pg.details(item))
		}
	}
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out, "Commands: add, edit, delete, details, list, back")
}

func findByID[T data.Entity](items []T, id int64) (T, bool) {
	for _, item := range items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
