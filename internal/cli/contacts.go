package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/contacts/internal/viewmodel"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all contacts",
		Long: `List all contacts ordered by name.

Example:
  contacts list
  contacts list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	vm := viewmodel.NewList(a.repo, a.pool)
	defer vm.Close()

	vm.LoadContacts()
	a.pool.Wait()

	if id, ok := takeMessage(&vm.ShowMessageEvent); ok && id.IsError() {
		return a.failWith(id)
	}
	return a.out.Success(contactTable(vm.Contacts.Get()))
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "show <id>",
		Short:         "Show a single contact",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}
}

func runShow(opts *RootOptions, id string, cmd *cobra.Command) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	vm := viewmodel.NewDetail(a.repo, a.pool)
	defer vm.Close()

	vm.LoadContact(id)
	a.pool.Wait()

	c := vm.Contact.Get()
	if !vm.DataAvailable.Get() || c == nil {
		return a.notFound(id)
	}
	return a.out.Success(contactCard(*c))
}

// EditorOptions holds flags for the add and edit commands.
type EditorOptions struct {
	*RootOptions
	Name   string
	Mobile string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditorOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new contact",
		Long: `Add a new contact with a generated ID.

The name must not be empty and the mobile number must contain digits only.

Example:
  contacts add --name "Ada Lovelace" --mobile 5551234`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "contact name")
	cmd.Flags().StringVar(&opts.Mobile, "mobile", "", "mobile number (digits only)")

	return cmd
}

func runAdd(opts *EditorOptions, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	vm := viewmodel.NewEditor(a.repo, a.pool, a.ids)
	defer vm.Close()

	vm.LoadContact("")
	vm.Name.Set(opts.Name)
	vm.Mobile.Set(opts.Mobile)
	vm.SaveContact()

	if err := a.settle(); err != nil {
		return err
	}
	id, _ := takeMessage(&vm.ShowMessageEvent)
	if id.IsError() {
		return a.failWith(id)
	}
	if !takeSignal(&vm.ContactSavedEvent) {
		return a.failWith(viewmodel.MessageErrorSaveContact)
	}

	a.out.VerboseLog("created contact %s", a.ids.Last())
	return a.out.Success(statusResult{Message: messageText(id), ID: a.ids.Last()})
}

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditorOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a contact's name or mobile number",
		Long: `Replace the name and/or mobile number of an existing contact.
Fields that are not given keep their stored value.

Example:
  contacts edit 7c9e6679-7425-40de-944b-e07fc1f90ae7 --mobile 5559876`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "new contact name")
	cmd.Flags().StringVar(&opts.Mobile, "mobile", "", "new mobile number (digits only)")

	return cmd
}

func runEdit(opts *EditorOptions, contactID string, cmd *cobra.Command) error {
	nameChanged := cmd.Flags().Changed("name")
	mobileChanged := cmd.Flags().Changed("mobile")
	if !nameChanged && !mobileChanged {
		return NewExitError(ExitCommandError, "nothing to change: pass --name and/or --mobile")
	}

	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	vm := viewmodel.NewEditor(a.repo, a.pool, a.ids)
	defer vm.Close()

	vm.LoadContact(contactID)
	a.pool.Wait()
	if !vm.DataAvailable.Get() {
		return a.notFound(contactID)
	}

	if nameChanged {
		vm.Name.Set(opts.Name)
	}
	if mobileChanged {
		vm.Mobile.Set(opts.Mobile)
	}
	vm.SaveContact()
	a.pool.Wait()

	id, _ := takeMessage(&vm.ShowMessageEvent)
	if id.IsError() {
		return a.failWith(id)
	}
	if !takeSignal(&vm.ContactUpdatedEvent) {
		return a.failWith(viewmodel.MessageErrorSaveContact)
	}
	return a.out.Success(statusResult{Message: messageText(id), ID: contactID})
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a contact",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], cmd)
		},
	}
}

func runDelete(opts *RootOptions, contactID string, cmd *cobra.Command) error {
	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	vm := viewmodel.NewDetail(a.repo, a.pool)
	defer vm.Close()

	vm.LoadContact(contactID)
	a.pool.Wait()
	if !vm.DataAvailable.Get() {
		return a.notFound(contactID)
	}

	vm.DeleteContact()
	a.pool.Wait()

	id, _ := takeMessage(&vm.ShowMessageEvent)
	if id.IsError() || !takeSignal(&vm.ContactDeletedEvent) {
		return a.failWith(viewmodel.MessageErrorDeleteContact)
	}
	return a.out.Success(statusResult{Message: messageText(id), ID: contactID})
}

// DeleteAllOptions holds flags for the delete-all command.
type DeleteAllOptions struct {
	*RootOptions
	Yes bool
}

// NewDeleteAllCommand creates the delete-all command.
func NewDeleteAllCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteAllOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every contact",
		Long: `Delete every contact. Requires --yes as confirmation.

Deleting from an empty address book is reported as a failure.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteAll(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "confirm deleting all contacts")

	return cmd
}

func runDeleteAll(opts *DeleteAllOptions, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	vm := viewmodel.NewList(a.repo, a.pool)
	defer vm.Close()

	vm.ShowDeleteAllContactsAlert()
	if takeSignal(&vm.DeleteAllAlertEvent) && !opts.Yes {
		return NewExitError(ExitCommandError, "refusing to delete all contacts without --yes")
	}

	vm.DeleteAllContacts()
	a.pool.Wait()

	id, ok := takeMessage(&vm.ShowMessageEvent)
	if !ok || id.IsError() {
		return a.failWith(viewmodel.MessageErrorDeletingAllContacts)
	}
	return a.out.Success(statusResult{Message: messageText(id)})
}
