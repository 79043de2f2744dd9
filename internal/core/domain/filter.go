package domain

import (
	"fmt"
	"math"
	"strings"
)

// A Set is an unordered collection of acceptable values.
// An empty Set puts no constraint on the field.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](vs ...T) Set[T] {
	s := make(Set[T], len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

func (s Set[T]) Active() bool {
	return len(s) != 0
}

// A FilterSpec is a validated filter request.
//
// Use [NewFilterSpec] to get unbounded ceilings.
type FilterSpec struct {
	Brands       Set[string]
	Categories   []string
	Applications Set[string]
	Sockets      Set[string]
	Cores        Set[int64]
	Threads      Set[int64]
	Cache        Set[int64]
	Tech         Set[string]
	MaxPrice     float64
	MaxFreq      float64
	MaxCache     float64
	MaxTDP       float64
}

func NewFilterSpec() FilterSpec {
	inf := math.Inf(1)
	return FilterSpec{
		MaxPrice: inf,
		MaxFreq:  inf,
		MaxCache: inf,
		MaxTDP:   inf,
	}
}

// Match reports whether p passes every constraint of s.
//
// Predicates run in a fixed order and stop at the first rejection.
// A numeric field that fails coercion before a rejection is reached
// yields an error wrapping [ErrMalformedCatalogField].
func (s FilterSpec) Match(p Product) (bool, error) {
	if s.Brands.Active() && !s.Brands.Has(p.Brand) {
		return false, nil
	}

	if len(s.Categories) != 0 && !s.matchCategory(p.Category) {
		return false, nil
	}

	if s.Applications.Active() && !s.Applications.Has(p.Application) {
		return false, nil
	}

	if s.Sockets.Active() {
		socket, ok := p.Socket()
		if !ok || !s.Sockets.Has(socket) {
			return false, nil
		}
	}

	intSets := []struct {
		name string
		set  Set[int64]
		v    Numeric
	}{
		{"cores", s.Cores, p.Cores()},
		{"threads", s.Threads, p.Threads()},
		{"cache", s.Cache, p.Cache()},
	}
	for _, c := range intSets {
		if !c.set.Active() {
			continue
		}
		i, err := c.v.Int()
		if err != nil {
			return false, fieldErr(p, c.name, err)
		}
		if !c.set.Has(i) {
			return false, nil
		}
	}

	if s.Tech.Active() {
		tech, ok := p.Tech()
		if !ok || !s.Tech.Has(tech) {
			return false, nil
		}
	}

	ceilings := []struct {
		name string
		max  float64
		v    Numeric
	}{
		{"price", s.MaxPrice, p.Price},
		{"base_freq", s.MaxFreq, p.BaseFreq()},
		{"cache", s.MaxCache, p.Cache()},
		{"tdp", s.MaxTDP, p.TDP()},
	}
	for _, c := range ceilings {
		f, err := c.v.Float()
		if err != nil {
			return false, fieldErr(p, c.name, err)
		}
		if f > c.max {
			return false, nil
		}
	}

	return true, nil
}

// matchCategory is a substring test: catalog categories are free text.
func (s FilterSpec) matchCategory(category string) bool {
	for _, c := range s.Categories {
		if strings.Contains(category, c) {
			return true
		}
	}
	return false
}

func fieldErr(p Product, field string, err error) error {
	return fmt.Errorf("product %q field %q: %w", p.ID, field, err)
}
