// Package reading defines the value model for probe output.
//
// Each probe produces a Section: a flat map from field name to a
// Reading, where a Reading is a scalar (number, string, bool) or a
// small list. Readings marshal to their bare JSON/YAML values so a
// serialized Section is an ordinary flat JSON object.
package reading
