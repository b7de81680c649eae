// Package mem provides memory accounting utilities.
//
// # Fixed Sizing
//
// Reports the in-memory size of value representations for the footprint
// estimate. Heap allocations reachable through pointers (strings, index
// nodes) are deliberately not counted.
package mem
