// Package grid provides the cell states and the rectangular grid the
// elimination simulator runs on.
//
// A cell is one of three kinds:
//
//   - Active: a removable unit, written '@' in input files
//   - Decaying: a removed unit fading through [DecayStages] stages
//   - Empty: the terminal dark state
//
// Cells are values; the only way to build a decaying cell is [Decaying], which
// rejects stages outside 1..DecayStages, and the only way to move one forward
// is [Cell.Advance].
//
// # Input
//
// [Parse] reads one row per line. '@' becomes Active; any other byte becomes
// Empty unless [ParseOptions.Strict] is set, in which case only '@' and '.'
// are accepted.
package grid
