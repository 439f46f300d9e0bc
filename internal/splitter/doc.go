// Package splitter divides a shopping basket across delivery types.
//
// A Splitter looks for the smallest sets of delivery types whose combined
// capabilities cover every product in the basket, keeps the cover containing
// the delivery type able to carry the most items, and then assigns each item
// instance to exactly one delivery type of that cover. Ties are always broken
// by delivery type name so results are reproducible.
package splitter
