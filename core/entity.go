package core

// Entity is a stable identifier for a simulated agent
// Zero is reserved as the "no entity" sentinel
type Entity uint64

// NoEntity marks an empty reference slot (target, binding, origin)
const NoEntity Entity = 0

// Kind classifies an entity for snapshot consumers
type Kind uint8

const (
	KindCancer Kind = iota
	KindTCell
	KindUpgrade
)

// String returns kind name
func (k Kind) String() string {
	switch k {
	case KindCancer:
		return "cancer"
	case KindTCell:
		return "tcell"
	case KindUpgrade:
		return "upgrade"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind as its name
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
