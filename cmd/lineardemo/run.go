package main

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"linearx/array"
	"linearx/config"
	"linearx/list"
	"linearx/log"
	"linearx/metrics"
	"linearx/queue"
)

type demo struct {
	cfg       *config.Config
	logger    log.Logger
	collector *metrics.Collector
}

func run(cfg *config.Config, logger log.Logger, reg *prometheus.Registry, which string) error {
	d := &demo{cfg: cfg, logger: logger, collector: metrics.NewCollector()}
	if err := reg.Register(d.collector); err != nil {
		return fmt.Errorf("register collector: %w", err)
	}

	var err error
	switch which {
	case "list":
		err = d.list()
	case "array":
		err = d.array()
	case "queue":
		err = d.queue()
	case "":
		if err = d.list(); err == nil {
			if err = d.array(); err == nil {
				err = d.queue()
			}
		}
	default:
		return fmt.Errorf("unknown scenario %q, want list, array or queue", which)
	}
	if err != nil {
		return err
	}
	return d.report(reg)
}

func (d *demo) list() error {
	l := list.New[int]()
	d.collector.Track("list", l)
	l.AddLast(10)
	l.AddLast(20)
	l.AddFirst(5)
	if _, err := l.AddAt(1, 15); err != nil {
		return err
	}
	d.logger.Info("list: %v", l)

	first, err := l.PeekFirst()
	if err != nil {
		return err
	}
	last, err := l.PeekLast()
	if err != nil {
		return err
	}
	d.logger.Info("list: first=%d last=%d", first, last)

	removed, err := l.RemoveAt(2)
	if err != nil {
		return err
	}
	d.logger.Info("list: removed %d, now %v", removed, l)
	return nil
}

func (d *demo) array() error {
	a, err := array.New[int](array.WithCapacity(d.cfg.ArrayCapacity), array.WithLogger(d.logger))
	if err != nil {
		return err
	}
	d.collector.Track("array", a)
	for _, v := range d.cfg.Values {
		a.Add(v)
	}
	a.Sort()
	for v := range a.All() {
		d.logger.Debug("array: %d", v)
	}
	d.logger.Info("array: sorted %v, capacity %d", a, a.Capacity())
	if len(d.cfg.Values) > 0 {
		key := d.cfg.Values[0]
		d.logger.Info("array: binary search %d -> %d", key, a.BinarySearch(key))
	}
	return nil
}

func (d *demo) queue() error {
	q := queue.New[string]()
	d.collector.Track("queue", q)
	for _, s := range d.cfg.Queue {
		q.Append(s)
	}
	if q.IsEmpty() {
		d.logger.Warn("queue: nothing configured")
		return nil
	}
	head, err := q.Peek()
	if err != nil {
		return err
	}
	d.logger.Info("queue: peek %s", head)
	polled, err := q.Poll()
	if err != nil {
		return err
	}
	d.logger.Info("queue: polled %s, size %d", polled, q.Size())
	if next, err := q.Peek(); err == nil {
		d.logger.Info("queue: peek %s", next)
	}
	it := q.Iterator()
	for it.Next() {
		d.logger.Debug("queue: %s", it.Value())
	}
	return it.Err()
}

func (d *demo) report(reg prometheus.Gatherer) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			d.logger.Info("metric %s{%s} %v", mf.GetName(), strings.Join(labels, ","), m.GetGauge().GetValue())
		}
	}
	return nil
}
