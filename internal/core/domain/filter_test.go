package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processor(id, brand, price string, spec ProcessorSpec) Product {
	return Product{
		ID:        id,
		Kind:      KindProcessor,
		Brand:     brand,
		Category:  "Processors - Servers Whole CPU Processors",
		Price:     NumericOf(price),
		Processor: &spec,
	}
}

func TestNewFilterSpec(t *testing.T) {
	s := NewFilterSpec()
	for _, v := range []float64{s.MaxPrice, s.MaxFreq, s.MaxCache, s.MaxTDP} {
		assert.True(t, math.IsInf(v, 1))
	}
	assert.False(t, s.Brands.Active())
}

func TestFilterSpecMatch(t *testing.T) {
	xeon := processor("cpu-102", "Intel", "399.0", ProcessorSpec{
		Socket:   "LGA4677",
		Cores:    NumericOf("16"),
		Threads:  NumericOf("32"),
		BaseFreq: NumericOf("2.1"),
		Cache:    NumericOf("30"),
		TDP:      NumericOf("185"),
		Tech:     "10nm",
	})
	hdd := Product{
		ID:       "hdd001",
		Kind:     KindStorage,
		Brand:    "Seagate",
		Category: "Internal HDD",
		Price:    NumericOf("39.99"),
		Storage:  &StorageSpec{Cache: NumericOf("64")},
	}

	tests := []struct {
		name string
		p    Product
		edit func(*FilterSpec)
		want bool
	}{
		{"Unconstrained", xeon, func(*FilterSpec) {}, true},
		{"BrandHit", xeon, func(s *FilterSpec) { s.Brands = NewSet("Intel", "AMD") }, true},
		{"BrandMiss", xeon, func(s *FilterSpec) { s.Brands = NewSet("AMD") }, false},
		{"CategorySubstring", xeon, func(s *FilterSpec) { s.Categories = []string{"Server"} }, true},
		{"CategoryMiss", xeon, func(s *FilterSpec) { s.Categories = []string{"Desktop"} }, false},
		{"CategoryCaseSensitive", xeon, func(s *FilterSpec) { s.Categories = []string{"server"} }, false},
		{"ApplicationMiss", xeon, func(s *FilterSpec) { s.Applications = NewSet("Gaming") }, false},
		{"SocketHit", xeon, func(s *FilterSpec) { s.Sockets = NewSet("LGA4677") }, true},
		{"SocketAbsentRejected", hdd, func(s *FilterSpec) { s.Sockets = NewSet("") }, false},
		{"CoresHit", xeon, func(s *FilterSpec) { s.Cores = NewSet[int64](8, 16) }, true},
		{"CoresMiss", xeon, func(s *FilterSpec) { s.Cores = NewSet[int64](8) }, false},
		{"ThreadsMiss", xeon, func(s *FilterSpec) { s.Threads = NewSet[int64](16) }, false},
		{"CacheSetOnStorage", hdd, func(s *FilterSpec) { s.Cache = NewSet[int64](64) }, true},
		{"MissingCoresAreZero", hdd, func(s *FilterSpec) { s.Cores = NewSet[int64](0) }, true},
		{"TechAbsentRejected", hdd, func(s *FilterSpec) { s.Tech = NewSet("7nm") }, false},
		{"TechHit", xeon, func(s *FilterSpec) { s.Tech = NewSet("10nm") }, true},
		{"PriceCeilingInclusive", xeon, func(s *FilterSpec) { s.MaxPrice = 399 }, true},
		{"PriceCeilingMiss", xeon, func(s *FilterSpec) { s.MaxPrice = 398.99 }, false},
		{"FreqCeilingMiss", xeon, func(s *FilterSpec) { s.MaxFreq = 2 }, false},
		{"MissingFreqIsZero", hdd, func(s *FilterSpec) { s.MaxFreq = 0 }, true},
		{"CacheCeilingMiss", hdd, func(s *FilterSpec) { s.MaxCache = 32 }, false},
		{"TDPCeilingMiss", xeon, func(s *FilterSpec) { s.MaxTDP = 125 }, false},
		{
			"CacheSetAndCeilingTogether", xeon, func(s *FilterSpec) {
				s.Cache = NewSet[int64](30)
				s.MaxCache = 20
			}, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewFilterSpec()
			tt.edit(&s)
			got, err := s.Match(tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterSpecMatchMalformed(t *testing.T) {
	broken := processor("cpu-900", "AMD", "229.0", ProcessorSpec{
		Cores: NumericOf("many"),
		TDP:   NumericOf("hot"),
	})

	t.Run("CoercedFieldFails", func(t *testing.T) {
		s := NewFilterSpec()
		s.Cores = NewSet[int64](8)
		_, err := s.Match(broken)
		assert.ErrorIs(t, err, ErrMalformedCatalogField)
		assert.ErrorContains(t, err, "cpu-900")
	})

	t.Run("CeilingAlwaysCoerced", func(t *testing.T) {
		_, err := NewFilterSpec().Match(broken)
		assert.ErrorIs(t, err, ErrMalformedCatalogField)
		assert.ErrorContains(t, err, "tdp")
	})

	t.Run("EarlierRejectionWins", func(t *testing.T) {
		s := NewFilterSpec()
		s.Brands = NewSet("Intel")
		ok, err := s.Match(broken)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestFilterSpecMoreConstraintsNeverWiden(t *testing.T) {
	products := []Product{
		processor("a", "Intel", "100", ProcessorSpec{Cores: NumericOf("8"), TDP: NumericOf("65")}),
		processor("b", "AMD", "200", ProcessorSpec{Cores: NumericOf("16"), TDP: NumericOf("105")}),
		processor("c", "AMD", "300", ProcessorSpec{Cores: NumericOf("8"), TDP: NumericOf("170")}),
	}

	count := func(s FilterSpec) int {
		n := 0
		for _, p := range products {
			ok, err := s.Match(p)
			require.NoError(t, err)
			if ok {
				n++
			}
		}
		return n
	}

	s := NewFilterSpec()
	prev := count(s)
	steps := []func(*FilterSpec){
		func(s *FilterSpec) { s.Brands = NewSet("AMD") },
		func(s *FilterSpec) { s.Cores = NewSet[int64](8) },
		func(s *FilterSpec) { s.MaxTDP = 100 },
	}
	for _, step := range steps {
		step(&s)
		n := count(s)
		assert.LessOrEqual(t, n, prev)
		prev = n
	}
	assert.Zero(t, prev)
}
