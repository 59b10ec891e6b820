// Package avx2 provides the 256-bit analysis kernels for amd64.
package avx2
