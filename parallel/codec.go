package parallel

import (
	"io"
	"math"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/robert-malhotra/go-matrixmarket/internal/errs"
	"github.com/robert-malhotra/go-matrixmarket/internal/scan"
)

// NeighboursMarker separates the records from the neighbour list.
const NeighboursMarker = "neighbours:"

// WriteIndices writes the records of set followed by the neighbours of
// remote. A nil remote writes an empty neighbour list.
func WriteIndices(w io.Writer, set *IndexSet, remote RemoteIndices) error {
	if set.Resizing() {
		return errors.Mark(errors.New("parallel: cannot write an index set during a resize"), ErrResize)
	}
	sw := scan.NewWriter(w)
	for r := range set.All() {
		sw.Line(
			strconv.FormatInt(r.Global, 10),
			strconv.Itoa(r.Local),
			strconv.Itoa(int(r.Attribute)),
			formatPublic(r.Public),
		)
	}
	sw.WriteString(NeighboursMarker)
	if remote != nil {
		for _, nb := range remote.Neighbours() {
			sw.WriteString(" " + strconv.Itoa(nb))
		}
	}
	sw.WriteString("\n")
	return sw.Flush()
}

// ReadIndices fills the empty set from r, hands the neighbours to remote
// and rebuilds it. If the input is malformed set is left empty and remote
// is not touched.
func ReadIndices(r io.Reader, set *IndexSet, remote RemoteIndices) error {
	if n := set.Size(); n != 0 || set.Resizing() {
		return errs.Formatf("parallel: index set is not empty (%d records)", n)
	}
	s, err := scan.ReadAll(r)
	if err != nil {
		return err
	}
	if err := set.BeginResize(); err != nil {
		return err
	}
	neighbours, err := readIndices(s, set)
	if err != nil {
		set.Clear()
		return err
	}
	if err := set.EndResize(); err != nil {
		set.Clear()
		return err
	}
	if remote == nil {
		return nil
	}
	remote.SetNeighbours(neighbours)
	return errors.Wrap(remote.Rebuild(), "rebuilding remote indices")
}

func readIndices(s *scan.Scanner, set *IndexSet) ([]int, error) {
	for {
		tok, err := s.PeekToken()
		if err != nil {
			return nil, errs.Formatf("parallel: line %d: missing %q marker", s.Line(), NeighboursMarker)
		}
		if tok == NeighboursMarker {
			_, _ = s.Token()
			break
		}
		if err := readRecord(s, set); err != nil {
			return nil, err
		}
	}

	var neighbours []int
	for {
		tok, err := s.Token()
		if err != nil {
			break
		}
		id, err := strconv.Atoi(tok)
		if err != nil || id < 0 {
			s.Seek(s.Pos() - len(tok))
			return nil, errs.Formatf("parallel: line %d: invalid neighbour id %q", s.Line(), tok)
		}
		neighbours = append(neighbours, id)
	}
	return normalize(neighbours), nil
}

func readRecord(s *scan.Scanner, set *IndexSet) error {
	global, err := s.Int()
	if err != nil {
		return errors.Wrap(err, "parallel: reading global index")
	}
	local, err := s.Uint()
	if err != nil {
		return errors.Wrap(err, "parallel: reading local index")
	}
	if local > math.MaxInt {
		return errs.Formatf("parallel: line %d: local index %d out of range", s.Line(), local)
	}
	attr, err := s.Int()
	if err != nil {
		return errors.Wrap(err, "parallel: reading attribute")
	}
	line := s.Line()
	tok, err := s.Token()
	if err != nil {
		return errs.Formatf("parallel: line %d: premature end of record, expected public flag", line)
	}
	public, ok := parsePublic(tok)
	if !ok {
		return errs.Formatf("parallel: line %d: invalid public flag %q", line, tok)
	}
	if err := set.Add(global, LocalIndex{
		Local:     int(local),
		Attribute: Attribute(attr),
		Public:    public,
	}); err != nil {
		return errs.WrapFormat(err, "line %d", line)
	}
	return nil
}

func formatPublic(p bool) string {
	if p {
		return "1"
	}
	return "0"
}

func parsePublic(tok string) (bool, bool) {
	switch tok {
	case "0":
		return false, true
	case "1":
		return true, true
	}
	return false, false
}
