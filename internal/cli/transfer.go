package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/seed"
	"github.com/roach88/contacts/internal/viewmodel"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import contacts from a YAML seed file",
		Long: `Import contacts from a YAML seed file.

Every entry is validated before anything is written. Entries without an id
get a generated one; entries with an id replace the stored contact.

Example:
  contacts import ./seed.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}
}

func runImport(opts *RootOptions, path string, cmd *cobra.Command) error {
	file, err := seed.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load seed file", err)
	}

	a, err := openApp(opts, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	imported := seed.Import(a.ctx, a.repo, file, a.ids)
	if err := a.settle(); err != nil {
		return err
	}

	n := len(imported)
	a.out.VerboseLog("imported %d contact(s) from %s", n, path)
	return a.out.Success(statusResult{
		Message: fmt.Sprintf("Imported %d contact(s)", n),
		Count:   &n,
	})
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file.yaml]",
		Short: "Export all contacts as a YAML seed file",
		Long: `Export all contacts as a YAML seed file that import accepts.
Writes to stdout when no file is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runExport(rootOpts, path, cmd)
		},
	}
}

func runExport(opts *RootOptions, path string, cmd *cobra.Command) (err error) {
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
	contacts := vm.Contacts.Get()

	if path == "" || path == "-" {
		return writeSeed(cmd.OutOrStdout(), contacts, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create export file", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = WrapExitError(ExitFailure, "failed to write export file", closeErr)
		}
	}()
	if err := writeSeed(f, contacts, path); err != nil {
		return err
	}

	n := len(contacts)
	return a.out.Success(statusResult{
		Message: fmt.Sprintf("Exported %d contact(s) to %s", n, path),
		Count:   &n,
	})
}

func writeSeed(w io.Writer, contacts []contact.Contact, path string) error {
	if err := seed.Write(w, contacts); err != nil {
		return WrapExitError(ExitFailure, fmt.Sprintf("failed to write %q", path), err)
	}
	return nil
}
