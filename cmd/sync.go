package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/emrgen/resourcesync/internal/resource"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func syncCmd() *cobra.Command {
	var urls []string
	var resourceIDs []uint

	command := &cobra.Command{
		Use:     "sync <kind> <id>",
		Short:   "sync the resources of a parent",
		Long:    `scan the text of a parent for links and bring its resource associations in line`,
		Example: "resources sync objective 42 --url https://example.com/guide --resource-id 7",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}

			a, err := newApp(cnf, nil)
			if err != nil {
				return err
			}
			defer a.close()

			plan, err := a.service.SyncByID(cmd.Context(), kind, id, urls, resourceIDs)
			if err != nil {
				return err
			}

			printPlan(plan)
			return nil
		},
	}

	command.Flags().StringSliceVarP(&urls, "url", "u", nil, "explicitly attached url, repeatable")
	command.Flags().UintSliceVarP(&resourceIDs, "resource-id", "r", nil, "explicitly attached resource id, repeatable")
	command.Flags().SortFlags = false

	return command
}

func printPlan(plan *resource.Plan) {
	if plan == nil || plan.Empty() {
		color.Green("resources are up to date")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Op", "Parent", "Resource", "Tags", "Auto"})
	for _, a := range plan.Create {
		table.Append([]string{"create", formatID(a.ParentID), formatID(a.ResourceID), strings.Join(a.SourceFields, ","), strconv.FormatBool(a.IsAutoDetected)})
	}
	for _, a := range plan.Update {
		table.Append([]string{"update", formatID(a.ParentID), formatID(a.ResourceID), strings.Join(a.SourceFields, ","), strconv.FormatBool(a.IsAutoDetected)})
	}
	for _, removal := range plan.Destroy {
		for _, id := range removal.ResourceIDs {
			table.Append([]string{"destroy", formatID(removal.ParentID), formatID(id), "", ""})
		}
	}
	table.Render()
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
