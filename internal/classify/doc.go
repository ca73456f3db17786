// Package classify turns a field's Go type into one of a closed set of
// generation shapes.
//
// Classification is the single boundary where type structure is inspected;
// the strategy resolver dispatches on the resulting Shape and never looks at
// go/types itself. Optional and Sequence shapes carry their inner type, so
// nested wrappers (e.g. [][]string, **T) are handled by structural recursion
// rather than by textual extraction.
package classify
