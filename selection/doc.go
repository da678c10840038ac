// Package selection addresses and measures positions in laid-out rich text.
//
// A document is a Collection of Layouts, one per semantic block. Each Layout
// is broken into Lines, each Line into Runs of uniform direction and
// attributes, and each Run into Slices, the smallest selectable units. An
// Index names one Slice by its path through that hierarchy and a Position
// pins a caret to one of the Slice's two edges.
//
// Positions and ranges are plain values. They are valid only against the
// Collection they were derived from; Model.SetCollection decides whether a
// held selection survives a new collection.
package selection
