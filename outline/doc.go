// Package outline builds the indentation tree of an outline document and
// rolls each line's value up into the results of its ancestors.
//
// Every non-blank line of a document is evaluated with [lang.Eval]. Lines
// indented deeper than the line before them become its children; a line
// indented the same or less climbs to the nearest ancestor with a smaller
// indent. A synthetic root line named Total holds the sum of all lines.
//
//	Groceries 20
//	  Milk 3
//	  Bread 4
//	Rent 1200$
//
// yields Groceries = 27 and Total = 1227, with the currency flag of the last
// top-level line carried by the root.
//
// Lines are stored in an arena, a slice indexed by insertion order, and refer
// to each other by index.
package outline
