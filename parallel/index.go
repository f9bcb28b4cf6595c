package parallel

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
)

// Attribute classifies who owns an index.
type Attribute int

// Attributes of an owner/overlap/copy decomposition.
const (
	Copy    Attribute = 0
	Owner   Attribute = 1
	Overlap Attribute = 2
)

func (a Attribute) String() string {
	switch a {
	case Copy:
		return "copy"
	case Owner:
		return "owner"
	case Overlap:
		return "overlap"
	default:
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
}

// LocalIndex is the process-local side of an index pair.
type LocalIndex struct {
	Local     int
	Attribute Attribute
	Public    bool
}

// Record associates a global id with its local index.
type Record struct {
	Global int64
	LocalIndex
}

// ErrResize is returned when records are added outside of a resize or a
// resize is started twice.
var ErrResize = errors.New("parallel: invalid index set state")

// IndexSet is the set of index pairs known to one process. Records can
// only be added between BeginResize and EndResize; EndResize orders the
// records by global id.
type IndexSet struct {
	records  []Record
	globals  map[int64]struct{}
	resizing bool
}

// NewIndexSet returns an empty index set.
func NewIndexSet() *IndexSet {
	return &IndexSet{globals: make(map[int64]struct{})}
}

// Size returns the number of records.
func (s *IndexSet) Size() int {
	return len(s.records)
}

// Resizing reports whether a resize is in progress.
func (s *IndexSet) Resizing() bool {
	return s.resizing
}

// BeginResize opens the set for adding records.
func (s *IndexSet) BeginResize() error {
	if s.resizing {
		return errors.Mark(errors.New("parallel: resize already in progress"), ErrResize)
	}
	if s.globals == nil {
		s.globals = make(map[int64]struct{})
	}
	s.resizing = true
	return nil
}

// Add inserts a record. Global ids must be unique.
func (s *IndexSet) Add(global int64, local LocalIndex) error {
	if !s.resizing {
		return errors.Mark(errors.New("parallel: Add outside of a resize"), ErrResize)
	}
	if _, ok := s.globals[global]; ok {
		return errors.Newf("parallel: duplicate global index %d", global)
	}
	s.globals[global] = struct{}{}
	s.records = append(s.records, Record{Global: global, LocalIndex: local})
	return nil
}

// EndResize closes the set for adding records.
func (s *IndexSet) EndResize() error {
	if !s.resizing {
		return errors.Mark(errors.New("parallel: EndResize without BeginResize"), ErrResize)
	}
	s.resizing = false
	slices.SortFunc(s.records, func(a, b Record) int {
		return cmp.Compare(a.Global, b.Global)
	})
	return nil
}

// Clear removes every record and abandons a resize in progress.
func (s *IndexSet) Clear() {
	s.records = nil
	s.globals = make(map[int64]struct{})
	s.resizing = false
}

// Lookup returns the local index of a global id.
func (s *IndexSet) Lookup(global int64) (LocalIndex, bool) {
	if s.resizing {
		return LocalIndex{}, false
	}
	i, ok := slices.BinarySearchFunc(s.records, global, func(r Record, g int64) int {
		return cmp.Compare(r.Global, g)
	})
	if !ok {
		return LocalIndex{}, false
	}
	return s.records[i].LocalIndex, true
}

// All iterates over the records in global id order.
func (s *IndexSet) All() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range s.records {
			if !yield(r) {
				return
			}
		}
	}
}

// Records returns a copy of the records.
func (s *IndexSet) Records() []Record {
	return slices.Clone(s.records)
}
