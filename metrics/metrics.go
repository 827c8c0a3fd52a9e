// Package metrics exports container sizes as prometheus gauges.
package metrics

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

//go:generate mockgen -source=metrics.go -destination=mocks/mock_sizer.go -package=mocks

// Sizer is what every container offers to embedding code.
type Sizer interface {
	Size() int
	IsEmpty() bool
}

// Collector reports the size of each tracked container when scraped. The
// containers themselves are not synchronized, so a scrape must not overlap a
// mutation of a tracked container.
type Collector struct {
	mu        sync.Mutex
	sizers    map[string]Sizer
	sizeDesc  *prometheus.Desc
	emptyDesc *prometheus.Desc
}

func NewCollector() *Collector {
	return &Collector{
		sizers: make(map[string]Sizer),
		sizeDesc: prometheus.NewDesc(
			"linear_container_size",
			"number of elements held by the container",
			[]string{"container"}, nil,
		),
		emptyDesc: prometheus.NewDesc(
			"linear_container_empty",
			"1 if the container holds no elements",
			[]string{"container"}, nil,
		),
	}
}

// Track starts reporting s under name, replacing any container already
// tracked under that name.
func (c *Collector) Track(name string, s Sizer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sizers[name] = s
}

func (c *Collector) Untrack(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sizers, name)
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.sizeDesc
	ch <- c.emptyDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, 0, len(c.sizers))
	for name := range c.sizers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := c.sizers[name]
		empty := 0.0
		if s.IsEmpty() {
			empty = 1
		}
		ch <- prometheus.MustNewConstMetric(c.sizeDesc, prometheus.GaugeValue, float64(s.Size()), name)
		ch <- prometheus.MustNewConstMetric(c.emptyDesc, prometheus.GaugeValue, empty, name)
	}
}

var defaultCollector = NewCollector()

func init() {
	prometheus.MustRegister(defaultCollector)
}

// Track reports s on the default prometheus registry.
func Track(name string, s Sizer) {
	defaultCollector.Track(name, s)
}

func Untrack(name string) {
	defaultCollector.Untrack(name)
}
