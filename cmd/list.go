package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var all bool

	command := &cobra.Command{
		Use:     "list <kind> <id>...",
		Short:   "list the resources of parents",
		Long:    `list the resources linked to parents, by default only those attached explicitly`,
		Example: "resources list activityReport 3 4 --all",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			ids := make([]uint, 0, len(args)-1)
			for _, arg := range args[1:] {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			a, err := newApp(cnf, nil)
			if err != nil {
				return err
			}
			defer a.close()

			associations, err := a.service.GetResources(cmd.Context(), kind, ids, all)
			if err != nil {
				return err
			}
			if len(associations) == 0 {
				color.Yellow("no resources found")
				return nil
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Parent", "Resource", "URL", "Domain", "Tags", "Auto"})
			for _, association := range associations {
				var url, domain string
				if association.Resource != nil {
					url, domain = association.Resource.URL, association.Resource.Domain
				}
				table.Append([]string{
					formatID(association.ParentID),
					formatID(association.ResourceID),
					url,
					domain,
					strings.Join(association.SourceFields, ","),
					strconv.FormatBool(association.IsAutoDetected),
				})
			}
			table.Render()

			return nil
		},
	}

	command.Flags().BoolVarP(&all, "all", "a", false, "include auto-detected resources")

	return command
}

func resolveCmd() *cobra.Command {
	command := &cobra.Command{
		Use:     "resolve <url>...",
		Short:   "find or create catalog entries",
		Example: "resources resolve https://example.com/guide https://example.org",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cnf, nil)
			if err != nil {
				return err
			}
			defer a.close()

			resources, err := a.service.FindOrCreateResources(cmd.Context(), args)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "URL", "Domain"})
			for _, r := range resources {
				table.Append([]string{formatID(r.ID), r.URL, r.Domain})
			}
			table.Render()

			return nil
		},
	}

	return command
}
