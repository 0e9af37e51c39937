package registry

import "fmt"

// Kind classifies how a token is registered, and which tier satisfied a
// lookup.
type Kind uint8

const (
	KindInstance Kind = iota
	KindFactory
	KindSingleton
	KindLazy
	KindConstructed
)

var kindNames = map[Kind]string{
	KindInstance:    "instance",
	KindFactory:     "factory",
	KindSingleton:   "singleton",
	KindLazy:        "lazy",
	KindConstructed: "constructed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", k)
}
