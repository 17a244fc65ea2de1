// Package estimator suggests point values from qualitative or profile inputs.
//
// Every estimate is advisory: nothing here writes to an entity. Callers apply
// a result to base points only on an explicit user action.
//
// Rule and weapon estimates are computed locally. Automatic rule analysis
// and unit costing are owned by the content backend and live in the
// backend client.
package estimator
