// Package unit implements the measurement algebra used by layouts.
//
// A [UnitValue] holds up to one magnitude per unit [Kind]: absolute, percent of
// parent, and font relative. Slots that were never set do not take part in
// combination, and contribute nothing when a value is evaluated.
//
// Values compose with [UnitValue.Add], [UnitValue.Sub] and [UnitValue.Mul], and
// are turned into concrete numbers with [UnitValue.Evaluate]. The magnitude may
// be a [Scalar] or a [Vec2], [Vec3] or [Vec4]; vector values can be edited one
// axis at a time through the per-axis API ([UnitValue.WithX] and friends).
package unit
