package autoinject

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BrunoMoraes-Z/autoinject/internal/reflect"
)

// Registration describes every way a single token is registered.
type Registration struct {
	// Type is the token, rendered the way the reflect package renders types.
	Type string
	// Kinds lists the stores holding the token, in lookup precedence order.
	Kinds []Kind
	// Materialized reports whether a concrete value exists right now, either
	// a registered instance or a memoized singleton. Factories and
	// unmaterialized lazy registrations are not.
	Materialized bool
}

// Snapshot returns one Registration per distinct token, sorted by type name.
// It observes a consistent point-in-time state of the injector.
func (inj *Injector) Snapshot() []Registration {
	entries := inj.registry.Entries()

	registrations := make([]Registration, 0, len(entries))
	for _, entry := range entries {
		kinds := make([]Kind, 0, 4)
		if entry.Instance {
			kinds = append(kinds, KindInstance)
		}
		if entry.Factory {
			kinds = append(kinds, KindFactory)
		}
		if entry.Singleton {
			kinds = append(kinds, KindSingleton)
		}
		if entry.Lazy {
			kinds = append(kinds, KindLazy)
		}

		registrations = append(
			registrations, Registration{
				Type:         reflect.TypeName(entry.Type),
				Kinds:        kinds,
				Materialized: entry.Instance || entry.Singleton,
			},
		)
	}

	sort.Slice(
		registrations, func(i, j int) bool {
			return registrations[i].Type < registrations[j].Type
		},
	)

	return registrations
}

func (inj *Injector) PrintSnapshot() {
	inj.FprintSnapshot(os.Stdout)
}

func (inj *Injector) FprintSnapshot(w io.Writer) {
	registrations := inj.Snapshot()

	if len(registrations) == 0 {
		_, _ = fmt.Fprintln(w, "(empty injector)")
		return
	}

	for _, reg := range registrations {
		status := "○"
		if reg.Materialized {
			status = "●"
		}

		_, _ = fmt.Fprintf(w, "%s %s [%s]\n", status, reg.Type, joinKinds(reg.Kinds))
	}
}

func (inj *Injector) SprintSnapshot() string {
	var sb strings.Builder
	inj.FprintSnapshot(&sb)
	return sb.String()
}

func joinKinds(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}
