package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/repository"
)

// contactTable renders as an aligned table.
type contactTable []contact.Contact

func (t contactTable) String() string {
	if len(t) == 0 {
		return "No contacts."
	}
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMOBILE")
	for _, c := range t {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, c.Mobile)
	}
	tw.Flush()
	return strings.TrimSuffix(b.String(), "\n")
}

// contactCard renders a single contact.
type contactCard contact.Contact

func (c contactCard) String() string {
	return fmt.Sprintf("ID:     %s\nName:   %s\nMobile: %s", c.ID, c.Name, c.Mobile)
}

// statusResult carries the one-shot message of a write command.
type statusResult struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func (r statusResult) String() string {
	if r.ID != "" {
		return fmt.Sprintf("%s (%s)", r.Message, r.ID)
	}
	return r.Message
}

// statsResult is the output of the stats command.
type statsResult struct {
	Contacts int                 `json:"contacts"`
	Cache    repository.Snapshot `json:"cache"`
}

func (r statsResult) String() string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Contacts:\t%d\n", r.Contacts)
	fmt.Fprintf(tw, "Cache hits:\tlist=%d get=%d\n", r.Cache.ListHits, r.Cache.GetHits)
	fmt.Fprintf(tw, "Cache misses:\tlist=%d get=%d\n", r.Cache.ListMisses, r.Cache.GetMisses)
	fmt.Fprintf(tw, "Cache refreshes:\t%d\n", r.Cache.Refreshes)
	fmt.Fprintf(tw, "Failed saves:\t%d\n", r.Cache.SaveFailures)
	tw.Flush()
	return strings.TrimSuffix(b.String(), "\n")
}
