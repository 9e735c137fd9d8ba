// Package symtab holds the declarative association between every known
// BLAS/LAPACK routine name and a pair of address slots: one for the LP64
// calling convention, one for ILP64. The detection core only reads the
// name lists; the forwarding layer fills the slots using detection results.
package symtab

import (
	"errors"
	"fmt"

	"github.com/blastramp/blastramp/probe"
)

const ilp64Suffix = "64_"

var (
	// ErrUnknownRoutine reports a name outside the fixed registry.
	ErrUnknownRoutine = errors.New("symtab: routine not in registry")
	// ErrSlotConflict reports an attempt to write a routine's address
	// slots more than once for the same library binding.
	ErrSlotConflict = errors.New("symtab: routine slot already populated")
)

// Names returns the registry of routine names in their canonical order.
// The returned slice is a copy; the registry itself is immutable.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// ILP64Name returns the distinguished ILP64 variant of a routine name,
// used as the 64-bit export name by the forwarding layer.
func ILP64Name(name string) string {
	return name + ilp64Suffix
}

// ILP64Names returns the ILP64 variants of the registry, parallel to
// Names.
func ILP64Names() []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = ILP64Name(name)
	}
	return out
}

type entry struct {
	addr32 uintptr
	addr64 uintptr
}

// Table maps every registry name to its two address slots for one library
// binding. Exactly one slot per routine is ever populated, matching the
// interface width detected for that library; the other stays zero for the
// lifetime of the binding. A fully populated Table is immutable and safe
// for concurrent readers.
type Table struct {
	entries map[string]*entry
}

// New returns an empty table over the full registry.
func New() *Table {
	entries := make(map[string]*entry, len(names))
	for _, name := range names {
		entries[name] = &entry{}
	}
	return &Table{entries: entries}
}

// Len reports the number of routines in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// SetAddr stores addr into the slot of name matching width. Each routine
// is bound at most once per library binding: a second write to either
// slot is rejected, as is an unknown width.
func (t *Table) SetAddr(name string, width probe.Width, addr uintptr) error {
	e, ok := t.entries[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRoutine, name)
	}
	if width != probe.LP64 && width != probe.ILP64 {
		return fmt.Errorf("symtab: cannot bind %s with width %s", name, width)
	}
	if e.addr32 != 0 || e.addr64 != 0 {
		return fmt.Errorf("%w: %s", ErrSlotConflict, name)
	}
	if width == probe.LP64 {
		e.addr32 = addr
	} else {
		e.addr64 = addr
	}
	return nil
}

// Addr32 returns the LP64 slot of name.
func (t *Table) Addr32(name string) (uintptr, bool) {
	e, ok := t.entries[name]
	if !ok || e.addr32 == 0 {
		return 0, false
	}
	return e.addr32, true
}

// Addr64 returns the ILP64 slot of name.
func (t *Table) Addr64(name string) (uintptr, bool) {
	e, ok := t.entries[name]
	if !ok || e.addr64 == 0 {
		return 0, false
	}
	return e.addr64, true
}

// Populate resolves every registry name decorated with the library's
// detected suffix and stores each hit into the slot matching the detected
// width. Names the library does not export are skipped; the number of
// bound routines is returned. A library with an unknown width cannot be
// populated at all.
func (t *Table) Populate(r probe.Resolver, suffix string, width probe.Width) (int, error) {
	if width != probe.LP64 && width != probe.ILP64 {
		return 0, fmt.Errorf("symtab: refusing to populate table for width %s", width)
	}
	bound := 0
	for _, name := range names {
		addr, ok := r.Lookup(name + suffix)
		if !ok {
			continue
		}
		if err := t.SetAddr(name, width, addr); err != nil {
			return bound, err
		}
		bound++
	}
	return bound, nil
}
