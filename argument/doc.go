// Package argument implements the low-level encoding for verbose DLT
// payload arguments: the 4-byte TypeInfo bitfield, fixed-point metadata,
// and the Argument value codec built on top of them.
//
// # TypeInfo word
//
// TypeInfo packs a kind discriminator, numeric width, string coding, and
// two informational flags into a single 32-bit word, always encoded in
// the message's payload endianness (see package endian):
//
//	bits 0-3   : type length (TYLE): 1=8bit 2=16bit 3=32bit 4=64bit 5=128bit
//	bit  4     : bool
//	bit  5     : signed
//	bit  6     : unsigned
//	bit  7     : float
//	bit  8     : array (reserved, always 0)
//	bit  9     : string
//	bit  10    : raw
//	bit  11    : has variable info (name/unit strings follow)
//	bit  12    : fixed point (combines with signed/unsigned)
//	bit  13    : has trace info
//	bits 15-17 : string coding: 0=ASCII 1=UTF-8
//
// Exactly one of bool/signed/unsigned/float/string/raw may be set, except
// that fixed point combines with signed or unsigned to produce the two
// fixed-point kinds. A word whose bits don't form one of these combinations,
// or whose width bits don't form a valid width for its kind, is rejected as
// Malformed rather than silently coerced — the encode/decode pair must be
// exact inverses on every value that survives decoding.
package argument
