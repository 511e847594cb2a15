// Package message decodes one DLT message at a time from a byte slice,
// dispatching to header and verbose-argument decoding in the header and
// argument packages, and exposes the resync and fast-consume primitives a
// reader uses to recover from corrupt input and to count messages without
// materializing their payloads.
//
//	decode_message(bytes, filter?, with_storage) -> (remainder, Parsed)
//
// Parsed is one of three outcomes: a fully decoded Item, a FilteredOut
// message whose payload was skipped unread, or an Invalid one whose
// headers were parsed far enough to show that its declared overall length
// cannot hold them. Every outcome comes with the remaining bytes so the
// caller can keep decoding the rest of the stream.
package message
