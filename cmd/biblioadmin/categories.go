package main

import (
	"fmt"

	"github.com/emzola/biblioadmin/controller"
	"github.com/emzola/biblioadmin/data"
	"github.com/spf13/cobra"
)

func (a *app) categoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Manage the category catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &entityPage[data.Category]{
				label:  "category",
				plural: "categories",
				ctrl:   controller.New(controller.CategorySpec(), a.client.Categories, a.notify, a.prompt, a.logger),
				header: fmt.Sprintf("%-5s %-30s", "ID", "Name"),
				row: func(category data.Category) string {
					return fmt.Sprintf("%-5d %-30s", category.ID, category.Name)
				},
				details: func(category data.Category) string {
					return category.Description
				},
				fill: fillCategory,
			}
			return page.run(cmd.Context(), a.prompt)
		},
	}
}

func fillCategory(p *prompter, category *data.Category) {
	category.Name = p.lineDefault("Name", category.Name)
	category.Description = p.lineDefault("Description", category.Description)
}
