package domain

type Kind string

const (
	KindProcessor Kind = "processor"
	KindStorage   Kind = "storage"
)

func (k Kind) Valid() bool {
	return k == KindProcessor || k == KindStorage
}

type (
	Product struct {
		ID          string
		Kind        Kind
		Name        string
		Brand       string
		Category    string
		Application string
		Price       Numeric
		Image       string
		Description string
		Processor   *ProcessorSpec
		Storage     *StorageSpec
	}

	ProcessorSpec struct {
		Socket        string
		Cores         Numeric
		Threads       Numeric
		BaseFreq      Numeric
		Cache         Numeric
		TDP           Numeric
		Tech          string
		MemoryType    string
		MaxMemorySize Numeric
		Packaging     string
	}

	StorageSpec struct {
		Capacity   Numeric
		RPM        Numeric
		FormFactor string
		Interface  string
		Speed      Numeric
		Cache      Numeric
	}
)

// Socket reports the processor socket. Storage devices have none.
func (p Product) Socket() (string, bool) {
	if p.Processor == nil {
		return "", false
	}
	return p.Processor.Socket, true
}

func (p Product) Tech() (string, bool) {
	if p.Processor == nil {
		return "", false
	}
	return p.Processor.Tech, true
}

func (p Product) Cores() Numeric {
	if p.Processor == nil {
		return Numeric{}
	}
	return p.Processor.Cores
}

func (p Product) Threads() Numeric {
	if p.Processor == nil {
		return Numeric{}
	}
	return p.Processor.Threads
}

func (p Product) BaseFreq() Numeric {
	if p.Processor == nil {
		return Numeric{}
	}
	return p.Processor.BaseFreq
}

func (p Product) TDP() Numeric {
	if p.Processor == nil {
		return Numeric{}
	}
	return p.Processor.TDP
}

// Cache is shared by both kinds.
func (p Product) Cache() Numeric {
	switch {
	case p.Processor != nil:
		return p.Processor.Cache
	case p.Storage != nil:
		return p.Storage.Cache
	}
	return Numeric{}
}

// A ListedProduct is a catalog record annotated against a user's shortlist.
type ListedProduct struct {
	Product
	IsShortlisted bool
}
