// Package utils provides small type-coercion helpers for loosely-typed data.
//
// The remote row store serves semi-structured rows where a numeric column may
// arrive as a JSON number on one row and a string on the next. These helpers
// normalize such cells without panicking on unexpected shapes; a cell that
// cannot be coerced yields the type's zero value.
package utils
