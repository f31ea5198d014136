// Package aggregate reads the runner CLI's results CSV, groups rows by
// (n, iseq, type, algo), and summarizes each group's timing distribution —
// dropping any group that contains a timeout rather than summarizing
// around the gap.
package aggregate
