// Package nodeui provides a path-addressed node tree and a unit-based
// layout engine for Go.
//
// Users import this single package for the complete public API: the generic
// node store ([Node], [NodeTree]), unit values ([UnitValue], [Abs], [Prc],
// [Rem]), layouts ([Window], [Solid]) and the compute pass
// ([Calculate], [CalculateTree]).
package nodeui
