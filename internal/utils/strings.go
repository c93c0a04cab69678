// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"unicode"
)

// CamelToSnake converts a mixed-case compound word into its lowercase,
// underscore-separated form: an underscore is inserted before every
// uppercase letter except a leading one, and all letters are lowercased.
//
//	CamelToSnake("customerId") == "customer_id"
//	CamelToSnake("CustomerId") == "customer_id"
//	CamelToSnake("customer_id") == "customer_id"
//
// Runs of capitals are split letter by letter ("userID" -> "user_i_d").
func CamelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}

	return b.String()
}

// NormalizeKeys returns a copy of m whose top-level keys are converted with
// [CamelToSnake]. Nested maps and slices are shared with m and keep their
// original key casing. A nil map yields nil.
func NormalizeKeys(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	normalized := make(map[string]any, len(m))
	for k, v := range m {
		normalized[CamelToSnake(k)] = v
	}

	return normalized
}
