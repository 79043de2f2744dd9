package catalog

import (
	"gopkg.in/yaml.v3"

	"github.com/niksmo/jubilant/internal/core/domain"
)

type (
	seed struct {
		Processors []processorRecord `yaml:"processors"`
		Storage    []storageRecord   `yaml:"storage"`
	}

	baseRecord struct {
		ID          string    `yaml:"id"`
		Name        string    `yaml:"name"`
		Brand       string    `yaml:"brand"`
		Category    string    `yaml:"category"`
		Application string    `yaml:"application"`
		Price       yaml.Node `yaml:"price"`
		Image       string    `yaml:"image"`
		Description string    `yaml:"description"`
	}

	processorRecord struct {
		baseRecord    `yaml:",inline"`
		Socket        string    `yaml:"socket"`
		Cores         yaml.Node `yaml:"cores"`
		Threads       yaml.Node `yaml:"threads"`
		BaseFreq      yaml.Node `yaml:"base_freq"`
		Cache         yaml.Node `yaml:"cache"`
		TDP           yaml.Node `yaml:"tdp"`
		Tech          string    `yaml:"tech"`
		MemoryType    string    `yaml:"memory_type"`
		MaxMemorySize yaml.Node `yaml:"max_memory_size"`
		Packaging     string    `yaml:"packaging"`
	}

	storageRecord struct {
		baseRecord `yaml:",inline"`
		Capacity   yaml.Node `yaml:"capacity"`
		RPM        yaml.Node `yaml:"rpm"`
		FormFactor string    `yaml:"form_factor"`
		Interface  string    `yaml:"interface"`
		Speed      yaml.Node `yaml:"speed"`
		Cache      yaml.Node `yaml:"cache"`
	}
)

// numeric keeps any scalar as is. Missing keys and nulls are absent.
func numeric(n yaml.Node) domain.Numeric {
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return domain.Numeric{}
	}
	return domain.NumericOf(n.Value)
}

func (r baseRecord) toDomain(kind domain.Kind) domain.Product {
	return domain.Product{
		ID:          r.ID,
		Kind:        kind,
		Name:        r.Name,
		Brand:       r.Brand,
		Category:    r.Category,
		Application: r.Application,
		Price:       numeric(r.Price),
		Image:       r.Image,
		Description: r.Description,
	}
}

func (r processorRecord) toDomain() domain.Product {
	p := r.baseRecord.toDomain(domain.KindProcessor)
	p.Processor = &domain.ProcessorSpec{
		Socket:        r.Socket,
		Cores:         numeric(r.Cores),
		Threads:       numeric(r.Threads),
		BaseFreq:      numeric(r.BaseFreq),
		Cache:         numeric(r.Cache),
		TDP:           numeric(r.TDP),
		Tech:          r.Tech,
		MemoryType:    r.MemoryType,
		MaxMemorySize: numeric(r.MaxMemorySize),
		Packaging:     r.Packaging,
	}
	return p
}

func (r storageRecord) toDomain() domain.Product {
	p := r.baseRecord.toDomain(domain.KindStorage)
	p.Storage = &domain.StorageSpec{
		Capacity:   numeric(r.Capacity),
		RPM:        numeric(r.RPM),
		FormFactor: r.FormFactor,
		Interface:  r.Interface,
		Speed:      numeric(r.Speed),
		Cache:      numeric(r.Cache),
	}
	return p
}
