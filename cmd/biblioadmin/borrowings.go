package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/emzola/biblioadmin/controller"
	"github.com/emzola/biblioadmin/data"
	"github.com/spf13/cobra"
)

func (a *app) borrowingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "borrowings",
		Short: "Manage book borrowings",
		RunE: func(cmd *cobra.Command, args []string) error {
			bc := controller.NewBorrowingController(
				a.client.Borrowings,
				a.client.Books,
				a.notify,
				a.prompt,
				a.logger,
			)
			return a.runBorrowingsPage(cmd.Context(), bc)
		},
	}
}

func (a *app) runBorrowingsPage(ctx context.Context, bc *controller.BorrowingController) error {
	if err := bc.LoadInitial(ctx); err != nil {
		return err
	}
	for {
		renderBorrowings(a.out, bc)
		printMenu(a.out)
		switch cmd := a.prompt.line("> "); cmd {
		case "add":
			a.addBorrowing(ctx, bc)
		case "edit":
			id, ok := a.prompt.id("ID: ")
			if !ok {
				continue
			}
			borrowing, found := findByID(bc.Items(), id)
			if !found {
				fmt.Fprintf(a.out, "no borrowing with id %d\n", id)
				continue
			}
			bc.BeginEdit(borrowing)
			fillBorrowing(a.prompt, bc.Editing())
			if bc.SubmitUpdate(ctx) != nil {
				bc.CancelEdit()
			}
		case "delete":
			id, ok := a.prompt.id("ID: ")
			if !ok {
				continue
			}
			bc.Remove(ctx, id)
		case "details":
			id, ok := a.prompt.id("ID: ")
			if !ok {
				continue
			}
			bc.ToggleDetails(id)
		case "list":
		case "back", "exit":
			return nil
		default:
			fmt.Fprintf(a.out, "unknown command %q\n", cmd)
		}
	}
}

// addBorrowing collects the borrower fields, then the book choice, and submits.
// The controller enforces the stock rule; a book with no copies left is
// rejected before anything is sent.
func (a *app) addBorrowing(ctx context.Context, bc *controller.BorrowingController) {
	fillBorrowing(a.prompt, bc.Draft())

	fmt.Fprintln(a.out, "Books:")
	for _, book := range bc.Books() {
		fmt.Fprintf(a.out, "  %d: %s (stock %d)\n", book.ID, book.Name, book.Stock)
	}
	if id, ok := a.prompt.id("Book id: "); ok {
		if !bc.SelectBook(id) {
			fmt.Fprintf(a.out, "no book with id %d\n", id)
		}
	}
	bc.SubmitCreate(ctx)
}

func fillBorrowing(p *prompter, borrowing *data.Borrowing) {
	borrowing.BorrowerName = p.lineDefault("Borrower name", borrowing.BorrowerName)
	borrowing.BorrowerMail = p.lineDefault("Borrower mail", borrowing.BorrowerMail)
	borrowing.BorrowingDate = p.lineDefault("Borrowing date (YYYY-MM-DD)", borrowing.BorrowingDate)
	borrowing.ReturnDate = p.lineDefault("Return date (blank if open)", borrowing.ReturnDate)
}

func renderBorrowings(out io.Writer, bc *controller.BorrowingController) {
	items := bc.Items()
	fmt.Fprintln(out)
	if len(items) == 0 {
		fmt.Fprintln(out, "No borrowings yet.")
		return
	}
	header := fmt.Sprintf("%-5s %-25s %-40s %-12s %-12s", "ID", "Borrower", "Book", "Borrowed", "Returned")
	fmt.Fprintln(out, header)
	fmt.Fprintln(out, strings.Repeat("-", len(header)))
	for _, borrowing := range items {
		returned := borrowing.ReturnDate
		if returned == "" {
			returned = "open"
		}
		fmt.Fprintf(out, "%-5d %-25s %-40s %-12s %-12s\n",
			borrowing.ID, borrowing.BorrowerName, borrowing.Book.Name, borrowing.BorrowingDate, returned)
		if bc.DetailsVisible(borrowing.ID) {
			fmt.Fprintf(out, "      %s, book snapshot: %q (%d), stock at borrowing %d\n",
				borrowing.BorrowerMail, borrowing.Book.Name, borrowing.Book.PublicationYear, borrowing.Book.Stock)
		}
	}
}
