// Package parallel holds the process-local index information of a
// distributed container and its text serialization.
//
// An [IndexSet] maps global degree-of-freedom ids to process-local slots,
// each tagged with an ownership [Attribute] and a public flag. A
// [RemoteIndices] implementation (supplied by the communication layer)
// knows the neighbouring processes and rebuilds the remote index
// information from them.
//
// The index file of one process looks like this:
//
//	0 0 1 1
//	7 1 2 1
//	12 2 0 0
//	neighbours: 1 3
//
// one record per line (global, local, attribute, public as 0 or 1), then
// the neighbour marker followed by the neighbouring process ids.
package parallel
