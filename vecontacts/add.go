package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rhystmorgan/veContacts/internal/models"
	"rhystmorgan/veContacts/internal/validation"
)

var (
	addName  string
	addEmail string
	addPhone string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a contact",
	Example: `  vecontacts add --name "Ann Lee" --email ann@example.com
  vecontacts add --name "Bob" --phone "+1 555 0100"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVar(&addName, "name", "", "Full name")
	addCmd.Flags().StringVar(&addEmail, "email", "", "Email address")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "Phone number")
}

func runAdd(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.Close()

	input := models.ContactInput{Name: addName, Email: addEmail, Phone: addPhone}
	result := validation.ValidateContactInput(input, rt.cfg.Rule())
	if !result.IsValid {
		messages := make([]string, 0, len(result.Errors))
		for _, e := range result.Errors {
			messages = append(messages, e.Message)
		}
		return errors.New("invalid contact: " + strings.Join(messages, "; "))
	}

	rt.store.Load()
	contact := rt.store.Add(input)

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", contact.Name, contact.ID)
	return nil
}
