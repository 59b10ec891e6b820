//go:build amd64 && !purego

package sbc

import (
	_ "github.com/tphakala/go-sbc/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/tphakala/go-sbc/internal/arch/amd64/sse2" // register SSE2 backend
)
