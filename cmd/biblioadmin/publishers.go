package main

import (
	"fmt"
	"strconv"

	"github.com/emzola/biblioadmin/controller"
	"github.com/emzola/biblioadmin/data"
	"github.com/spf13/cobra"
)

func (a *app) publishersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "publishers",
		Short: "Manage the publisher catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			page := &entityPage[data.Publisher]{
				label:  "publisher",
				plural: "publishers",
				ctrl:   controller.New(controller.PublisherSpec(), a.client.Publishers, a.notify, a.prompt, a.logger),
				header: fmt.Sprintf("%-5s %-30s", "ID", "Name"),
				row: func(publisher data.Publisher) string {
					return fmt.Sprintf("%-5d %-30s", publisher.ID, publisher.Name)
				},
				details: func(publisher data.Publisher) string {
					return fmt.Sprintf("established %d, %s", publisher.EstablishmentYear, publisher.Address)
				},
				fill: fillPublisher,
			}
			return page.run(cmd.Context(), a.prompt)
		},
	}
}

func fillPublisher(p *prompter, publisher *data.Publisher) {
	publisher.Name = p.lineDefault("Name", publisher.Name)
	var current string
	if publisher.EstablishmentYear != 0 {
		current = strconv.FormatInt(int64(publisher.EstablishmentYear), 10)
	}
	year := p.lineDefault("Establishment year", current)
	if parsed, err := strconv.ParseInt(year, 10, 32); err == nil {
		publisher.EstablishmentYear = int32(parsed)
	} else {
		publisher.EstablishmentYear = 0
	}
	publisher.Address = p.lineDefault("Address", publisher.Address)
}
