// Package fixtures writes and checks the nine mixed line-ending files
// f1 through f9.
//
// Every file holds Line1, Line2 and Line3, each followed by the separator
// given in Table. Nothing follows the third separator. The table is fixed;
// downstream detection and normalization tests rely on the exact bytes.
package fixtures
