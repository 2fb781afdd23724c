// Package frame holds the small time-indexed tables the plotting helpers work
// on. A Table is wide-form: one row per step and one named column per series.
// Melt turns it into long-form records, one per (step, column, value), which is
// what multi-series charts are built from.
package frame
