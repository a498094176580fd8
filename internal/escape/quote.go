// Copyright (C) 2025 The fastsnbt authors. All Rights Reserved.

package escape

import "go4.org/mem"

// Quote appends the escaped form of src to dst, without surrounding
// quotation marks. Only '"' and '\' are escaped; every other byte, control
// characters included, passes through untouched. Existing consumers of the
// format expect exactly this minimal policy, not JSON-style escaping.
func Quote(dst []byte, src mem.RO) []byte {
	start := 0
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if b != '"' && b != '\\' {
			continue
		}
		dst = mem.Append(dst, src.SliceTo(i).SliceFrom(start))
		dst = append(dst, '\\', b)
		start = i + 1
	}
	return mem.Append(dst, src.SliceFrom(start))
}
