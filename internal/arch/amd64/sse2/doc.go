// Package sse2 provides the 128-bit analysis kernels for amd64. Each kernel
// runs the window stage as five PMADDWD multiply-adds per lane group and the
// modulation stage on broadcast lane pairs.
package sse2
