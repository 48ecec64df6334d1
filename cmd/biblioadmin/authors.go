package main

import (
	"fmt"

	"github.com/emzola/biblioadmin/controller"
	"github.com/emzola/biblioadmin/data"
	"github.com/spf13/cobra"
)

func (a *app) authorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "authors",
		Short: "Manage the author catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &entityPage[data.Author]{
				label:  "author",
				plural: "authors",
				ctrl:   controller.New(controller.AuthorSpec(), a.client.Authors, a.notify, a.prompt, a.logger),
				header: fmt.Sprintf("%-5s %-30s", "ID", "Name"),
				row: func(author data.Author) string {
					return fmt.Sprintf("%-5d %-30s", author.ID, author.Name)
				},
				details: func(author data.Author) string {
					return fmt.Sprintf("born %s, %s", author.BirthDate, author.Country)
				},
				fill: fillAuthor,
			}
			return page.run(cmd.Context(), a.prompt)
		},
	}
}

func fillAuthor(p *prompter, author *data.Author) {
	author.Name = p.lineDefault("Name", author.Name)
	author.BirthDate = p.lineDefault("Birth date (YYYY-MM-DD)", author.BirthDate)
	author.Country = p.lineDefault("Country", author.Country)
}
