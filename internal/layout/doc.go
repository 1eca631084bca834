// Package layout turns declarative node layouts into concrete rectangles.
//
// Every node in a [Tree] carries a [NodeData] payload holding a [Layout]
// (a [Window] or a [Solid]) and the [Rect] computed for it. [Calculate] and
// [CalculateTree] walk the tree depth-first, evaluating each layout against
// the rectangle already computed for its parent.
//
// A computed Rect's position is relative to its parent's top-left corner.
// [AbsoluteRect] adds up the offsets along a path for callers that need
// viewport coordinates.
// Types are re-exported through the root nodeui package for public consumption.
package layout
