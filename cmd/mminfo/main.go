// mminfo prints the header of MatrixMarket files and the content of
// parallel index files.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-matrixmarket/internal/banner"
	"github.com/robert-malhotra/go-matrixmarket/matrixmarket"
	"github.com/robert-malhotra/go-matrixmarket/parallel"
)

func main() {
	if err := newRootCmd(vfs.Default).Execute(); err != nil {
		os.Exit(1)
	}
}

type mminfo struct {
	fs      vfs.FS
	vector  bool
	block   string
	verbose bool
}

func newRootCmd(fs vfs.FS) *cobra.Command {
	m := &mminfo{fs: fs}

	root := &cobra.Command{
		Use:          "mminfo [command]",
		Short:        "MatrixMarket introspection tool",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(
		&m.verbose, "verbose", "v", false, "log diagnostics to stderr")

	header := &cobra.Command{
		Use:   "header <file>",
		Short: "print the banner and dimensions of a body file",
		Long: `
Print the banner, the comments and the dimension line of a MatrixMarket
file. With --block the number of block rows, columns and nonzero blocks
for that block shape is printed as well.
`,
		Args: cobra.ExactArgs(1),
		RunE: m.runHeader,
	}
	header.Flags().BoolVar(
		&m.vector, "vector", false, "read the file as a vector (array storage, no entry count)")
	header.Flags().StringVar(
		&m.block, "block", "", "block shape as <rows>x<cols>, e.g. 2x2")

	indices := &cobra.Command{
		Use:   "indices <file>",
		Short: "print the records and neighbours of an index file",
		Args:  cobra.ExactArgs(1),
		RunE:  m.runIndices,
	}

	root.AddCommand(header, indices)
	return root
}

func (m *mminfo) logger(cmd *cobra.Command) logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(cmd.ErrOrStderr())
	if !m.verbose {
		l.SetOutput(io.Discard)
	}
	return l
}

func (m *mminfo) open(name string) (vfs.File, error) {
	f, err := m.fs.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", name)
	}
	return f, nil
}

func (m *mminfo) runHeader(cmd *cobra.Command, args []string) error {
	var shape matrixmarket.BlockShape
	if m.block != "" {
		var err error
		if shape, err = parseShape(m.block); err != nil {
			return err
		}
	}

	f, err := m.open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := matrixmarket.ReadHeader(f, m.vector, matrixmarket.WithLogger(m.logger(cmd)))
	if err != nil {
		return err
	}

	tbl := tablewriter.NewWriter(cmd.OutOrStdout())
	tbl.SetAutoWrapText(false)
	tbl.SetHeader([]string{"Field", "Value"})
	tbl.Append([]string{"banner", info.Header.Banner()})
	tbl.Append([]string{"defaulted", strconv.FormatBool(info.Defaulted)})
	tbl.Append([]string{"rows", strconv.Itoa(info.Dims.Rows)})
	tbl.Append([]string{"cols", strconv.Itoa(info.Dims.Cols)})
	if !m.vector && info.Header.Storage == banner.Coordinate {
		tbl.Append([]string{"entries", strconv.Itoa(info.Dims.Entries)})
	}
	if info.Blocked.Valid() {
		tbl.Append([]string{"blocked", info.Blocked.String()})
	}
	if shape.Valid() && !m.vector {
		blocks, err := banner.CalculateNNZ(info.Dims, shape, info.Header.Structure)
		if err != nil {
			return err
		}
		tbl.Append([]string{"block rows", strconv.Itoa(blocks.Rows)})
		tbl.Append([]string{"block cols", strconv.Itoa(blocks.Cols)})
		tbl.Append([]string{"nonzero blocks", strconv.Itoa(blocks.Entries)})
	}
	for _, c := range info.Comments {
		tbl.Append([]string{"comment", c})
	}
	tbl.Render()
	return nil
}

func (m *mminfo) runIndices(cmd *cobra.Command, args []string) error {
	f, err := m.open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	set := parallel.NewIndexSet()
	topo := parallel.NewTopology()
	if err := parallel.ReadIndices(f, set, topo); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tbl := tablewriter.NewWriter(out)
	tbl.SetAutoWrapText(false)
	tbl.SetHeader([]string{"Global", "Local", "Attribute", "Public"})
	for r := range set.All() {
		tbl.Append([]string{
			strconv.FormatInt(r.Global, 10),
			strconv.Itoa(r.Local),
			r.Attribute.String(),
			strconv.FormatBool(r.Public),
		})
	}
	tbl.Render()

	nb := topo.Neighbours()
	ids := make([]string, len(nb))
	for i, id := range nb {
		ids[i] = strconv.Itoa(id)
	}
	fmt.Fprintf(out, "neighbours: %s\n", strings.Join(ids, " "))
	return nil
}

func parseShape(s string) (matrixmarket.BlockShape, error) {
	r, c, ok := strings.Cut(s, "x")
	if !ok {
		return matrixmarket.BlockShape{}, errors.Newf("invalid block shape %q, want <rows>x<cols>", s)
	}
	rows, err1 := strconv.Atoi(r)
	cols, err2 := strconv.Atoi(c)
	shape := matrixmarket.BlockShape{Rows: rows, Cols: cols}
	if err1 != nil || err2 != nil || !shape.Valid() {
		return matrixmarket.BlockShape{}, errors.Newf("invalid block shape %q, want <rows>x<cols>", s)
	}
	return shape, nil
}
