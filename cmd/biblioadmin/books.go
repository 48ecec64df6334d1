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

func (a *app) booksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "books",
		Short: "Manage the book catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			bc := controller.NewBookController(
				a.client.Books,
				a.client.Authors,
				a.client.Publishers,
				a.client.Categories,
				a.notify,
				a.prompt,
				a.logger,
			)
			return a.runBooksPage(cmd.Context(), bc)
		},
	}
}

func (a *app) runBooksPage(ctx context.Context, bc *controller.BookController) error {
	if err := bc.LoadInitial(ctx); err != nil {
		return err
	}
	for {
		renderBooks(a.out, bc)
		printMenu(a.out)
		switch cmd := a.prompt.line("> "); cmd {
		case "add":
			a.fillBookForm(bc)
			bc.SubmitCreate(ctx)
		case "edit":
			id, ok := a.prompt.id("ID: ")
			if !ok {
				continue
			}
			book, found := findByID(bc.Items(), id)
			if !found {
				fmt.Fprintf(a.out, "no book with id %d\n", id)
				continue
			}
			bc.BeginEdit(book)
			a.fillBookForm(bc)
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

func renderBooks(out io.Writer, bc *controller.BookController) {
	items := bc.Items()
	fmt.Fprintln(out)
	if len(items) == 0 {
		fmt.Fprintln(out, "No books yet.")
		return
	}
	header := fmt.Sprintf("%-5s %-40s %-6s %-6s", "ID", "Name", "Year", "Stock")
	fmt.Fprintln(out, header)
	fmt.Fprintln(out, strings.Repeat("-", len(header)))
	for _, book := range items {
		fmt.Fprintf(out, "%-5d %-40s %-6d %-6d\n", book.ID, book.Name, book.PublicationYear, book.Stock)
		if bc.DetailsVisible(book.ID) {
			fmt.Fprintf(out, "      by %s, published by %s, categories: %s\n",
				book.Author.Name, book.Publisher.Name, categoryNames(book.Categories))
		}
	}
}

func categoryNames(categories []data.Category) string {
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}
	return strings.Join(names, ", ")
}

// fillBookForm prompts for the flat book form fields, listing the loaded
// reference data so the user can pick ids from it.
func (a *app) fillBookForm(bc *controller.BookController) {
	form := bc.Form()
	form.Name = a.prompt.lineDefault("Name", form.Name)
	form.PublicationYear = a.prompt.lineDefault("Publication year", form.PublicationYear)
	form.Stock = a.prompt.lineDefault("Stock", form.Stock)

	fmt.Fprintln(a.out, "Authors:")
	for _, author := range bc.Authors() {
		fmt.Fprintf(a.out, "  %d: %s\n", author.ID, author.Name)
	}
	form.AuthorID = a.prompt.idDefault("Author id", form.AuthorID)

	fmt.Fprintln(a.out, "Publishers:")
	for _, publisher := range bc.Publishers() {
		fmt.Fprintf(a.out, "  %d: %s\n", publisher.ID, publisher.Name)
	}
	form.PublisherID = a.prompt.idDefault("Publisher id", form.PublisherID)

	fmt.Fprintln(a.out, "Categories:")
	for _, category := range bc.Categories() {
		fmt.Fprintf(a.out, "  %d: %s\n", category.ID, category.Name)
	}
	form.CategoryIDs = a.prompt.idsDefault("Category ids (comma separated)", form.CategoryIDs)
}
