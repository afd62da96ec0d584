package repository

import (
	"io"

	"github.com/VictoriaMetrics/metrics"
)

// Metrics counts cache and background-save outcomes.
type Metrics struct {
	set *metrics.Set

	listHits     *metrics.Counter
	listMisses   *metrics.Counter
	getHits      *metrics.Counter
	getMisses    *metrics.Counter
	refreshes    *metrics.Counter
	saveFailures *metrics.Counter
}

func NewMetrics() *Metrics {
	set := metrics.NewSet()
	return &Metrics{
		set:          set,
		listHits:     set.NewCounter(`contacts_cache_hits_total{op="list"}`),
		listMisses:   set.NewCounter(`contacts_cache_misses_total{op="list"}`),
		getHits:      set.NewCounter(`contacts_cache_hits_total{op="get"}`),
		getMisses:    set.NewCounter(`contacts_cache_misses_total{op="get"}`),
		refreshes:    set.NewCounter(`contacts_cache_refreshes_total`),
		saveFailures: set.NewCounter(`contacts_background_save_failures_total`),
	}
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	ListHits     uint64 `json:"list_hits"`
	ListMisses   uint64 `json:"list_misses"`
	GetHits      uint64 `json:"get_hits"`
	GetMisses    uint64 `json:"get_misses"`
	Refreshes    uint64 `json:"refreshes"`
	SaveFailures uint64 `json:"save_failures"`
}

func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		ListHits:     m.listHits.Get(),
		ListMisses:   m.listMisses.Get(),
		GetHits:      m.getHits.Get(),
		GetMisses:    m.getMisses.Get(),
		Refreshes:    m.refreshes.Get(),
		SaveFailures: m.saveFailures.Get(),
	}
}

// WritePrometheus writes the counters in Prometheus text exposition format.
func (m *Metrics) WritePrometheus(w io.Writer) {
	m.set.WritePrometheus(w)
}
