package httphandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/niksmo/jubilant/internal/core/domain"
)

type (
	Product struct {
		ID            string          `json:"id"`
		Kind          domain.Kind     `json:"kind"`
		Name          string          `json:"name"`
		Brand         string          `json:"brand"`
		Category      string          `json:"category"`
		Application   string          `json:"application"`
		Price         domain.Numeric  `json:"price"`
		Image         string          `json:"image,omitempty"`
		Description   string          `json:"description,omitempty"`
		Socket        string          `json:"socket,omitempty"`
		Cores         domain.Numeric  `json:"cores,omitzero"`
		Threads       domain.Numeric  `json:"threads,omitzero"`
		BaseFreq      domain.Numeric  `json:"base_freq,omitzero"`
		Cache         domain.Numeric  `json:"cache,omitzero"`
		TDP           domain.Numeric  `json:"tdp,omitzero"`
		Tech          string          `json:"tech,omitempty"`
		MemoryType    string          `json:"memory_type,omitempty"`
		MaxMemorySize domain.Numeric  `json:"max_memory_size,omitzero"`
		Packaging     string          `json:"packaging,omitempty"`
		Capacity      domain.Numeric  `json:"capacity,omitzero"`
		RPM           *domain.Numeric `json:"rpm,omitempty"`
		FormFactor    string          `json:"form_factor,omitempty"`
		Interface     string          `json:"interface,omitempty"`
		Speed         domain.Numeric  `json:"speed,omitzero"`
		IsShortlisted *bool           `json:"isShortlisted,omitempty"`
	}

	ProductsResponse struct {
		Success  bool      `json:"success"`
		Count    *int      `json:"count,omitempty"`
		Products []Product `json:"products"`
	}

	ProductResponse struct {
		Success bool    `json:"success"`
		Product Product `json:"product"`
	}

	MessageResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
)

func productFromDomain(p domain.Product) Product {
	v := Product{
		ID:          p.ID,
		Kind:        p.Kind,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    p.Category,
		Application: p.Application,
		Price:       p.Price,
		Image:       p.Image,
		Description: p.Description,
	}

	if s := p.Processor; s != nil {
		v.Socket = s.Socket
		v.Cores = s.Cores
		v.Threads = s.Threads
		v.BaseFreq = s.BaseFreq
		v.Cache = s.Cache
		v.TDP = s.TDP
		v.Tech = s.Tech
		v.MemoryType = s.MemoryType
		v.MaxMemorySize = s.MaxMemorySize
		v.Packaging = s.Packaging
	}

	if s := p.Storage; s != nil {
		rpm := s.RPM
		v.Capacity = s.Capacity
		v.RPM = &rpm
		v.FormFactor = s.FormFactor
		v.Interface = s.Interface
		v.Speed = s.Speed
		v.Cache = s.Cache
	}
	return v
}

func listedFromDomain(lp domain.ListedProduct) Product {
	v := productFromDomain(lp.Product)
	shortlisted := lp.IsShortlisted
	v.IsShortlisted = &shortlisted
	return v
}

type ToggleRequest struct {
	ProductID string `json:"productId"`
	Action    string `json:"action"`
}

// FilterRequest mirrors the shortlist filter form. Every field is optional.
type FilterRequest struct {
	Brands       []string   `json:"brands"`
	Categories   []string   `json:"categories"`
	Applications []string   `json:"applications"`
	Sockets      []string   `json:"sockets"`
	Cores        []flexInt  `json:"cores"`
	Threads      []flexInt  `json:"threads"`
	Cache        []flexInt  `json:"cache"`
	Tech         []string   `json:"tech"`
	MaxPrice     *flexFloat `json:"maxPrice"`
	MaxFreq      *flexFloat `json:"maxFreq"`
	MaxCache     *flexFloat `json:"maxCache"`
	MaxTdp       *flexFloat `json:"maxTdp"`
}

func (r FilterRequest) toDomain() domain.FilterSpec {
	spec := domain.NewFilterSpec()
	spec.Brands = domain.NewSet(r.Brands...)
	spec.Categories = r.Categories
	spec.Applications = domain.NewSet(r.Applications...)
	spec.Sockets = domain.NewSet(r.Sockets...)
	spec.Cores = intSet(r.Cores)
	spec.Threads = intSet(r.Threads)
	spec.Cache = intSet(r.Cache)
	spec.Tech = domain.NewSet(r.Tech...)

	ceilings := []struct {
		v   *flexFloat
		dst *float64
	}{
		{r.MaxPrice, &spec.MaxPrice},
		{r.MaxFreq, &spec.MaxFreq},
		{r.MaxCache, &spec.MaxCache},
		{r.MaxTdp, &spec.MaxTDP},
	}
	for _, c := range ceilings {
		if c.v != nil {
			*c.dst = float64(*c.v)
		}
	}
	return spec
}

func intSet(vs []flexInt) domain.Set[int64] {
	s := make(domain.Set[int64], len(vs))
	for _, v := range vs {
		s[int64(v)] = struct{}{}
	}
	return s
}

// flexInt accepts a JSON number or a string holding an integer.
// A fractional number is truncated.
type flexInt int64

func (v *flexInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return errors.New("null is not an integer")
	}
	if s, ok := unquote(data); ok {
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fmt.Errorf("%q is not an integer", s)
		}
		*v = flexInt(i)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%s is not an integer", data)
	}
	f = math.Trunc(f)
	if math.Abs(f) >= math.MaxInt64 {
		return fmt.Errorf("%s is not an integer", data)
	}
	*v = flexInt(f)
	return nil
}

// flexFloat accepts a JSON number or a numeric string.
type flexFloat float64

func (v *flexFloat) UnmarshalJSON(data []byte) error {
	if s, ok := unquote(data); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) {
			return fmt.Errorf("%q is not a number", s)
		}
		*v = flexFloat(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("%s is not a number", data)
	}
	*v = flexFloat(f)
	return nil
}

func unquote(data []byte) (string, bool) {
	if !bytes.HasPrefix(data, []byte(`"`)) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", false
	}
	return s, true
}
