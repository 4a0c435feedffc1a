package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"rhystmorgan/veContacts/internal/contacts"
	"rhystmorgan/veContacts/internal/utils"
)

var (
	listJSON   bool
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List contacts, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only show contacts whose name contains this text")
}

func runList(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.Close()

	all := rt.store.Load()
	shown := contacts.Filter(all, listSearch)
	out := cmd.OutOrStdout()

	if listJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(shown); err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		return nil
	}

	summary := contacts.Summarize(len(shown), len(all), listSearch)
	if summary.Empty() {
		fmt.Fprintln(out, summary.EmptyTitle())
		fmt.Fprintln(out, summary.EmptyHint())
		return nil
	}

	for _, c := range shown {
		fmt.Fprintf(out, "%s  %s  %s\n",
			utils.PadString(utils.TruncateString(c.Name, 24), 24, ' '),
			utils.PadString(utils.TruncateString(c.Email, 32), 32, ' '),
			c.Phone,
		)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, summary.FooterLine())
	return nil
}
