// Package report orchestrates the full analysis pipeline over a
// graphmodel.Graph in a fixed stage order: contradictions, cycle
// detection, topological sort, betweenness centrality, then the
// argument scorer, fallacy detector, and bias detector (which all read
// the centrality/cycle results but do not depend on each other). Analyze
// is a pure function: the same graph always produces the same Report.
package report
