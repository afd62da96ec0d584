package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/contacts/internal/viewmodel"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	Prometheus bool
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show contact count and cache counters",
		Long: `Load the contact list once and report the number of contacts together with
the repository cache counters of this run.

Example:
  contacts stats
  contacts stats --prometheus`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Prometheus, "prometheus", false, "write counters in Prometheus text format")

	return cmd
}

func runStats(opts *StatsOptions, cmd *cobra.Command) error {
	a, err := openApp(opts.RootOptions, cmd)
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

	if opts.Prometheus {
		a.repo.Metrics().WritePrometheus(cmd.OutOrStdout())
		return nil
	}
	return a.out.Success(statsResult{
		Contacts: len(vm.Contacts.Get()),
		Cache:    a.repo.Metrics().Snapshot(),
	})
}
