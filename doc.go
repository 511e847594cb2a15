// Package dltcore decodes DLT (Diagnostic Log and Trace) wire-format
// messages from byte buffers, synchronous files, and asynchronous
// streams into structured, typed message values.
//
// # Core Features
//
//   - Storage/standard/extended header and verbose/non-verbose argument
//     decoding, with a three-way Incomplete/Malformed/Unrecoverable
//     outcome taxonomy for every parse.
//   - Declarative message filtering by ecu id, app id, context id, and
//     minimum log level, compiled once and evaluated per message.
//   - Synchronous and context-aware asynchronous framed readers over any
//     io.Reader, plus transparent zstd/LZ4 decompression.
//   - A header-only statistics pass that never materializes argument
//     payloads, with plain-tally and Prometheus collector
//     implementations.
//   - A FIBEX descriptor loader resolving non-verbose payload layouts,
//     and a DLF filter-file loader.
//
// # Basic Usage
//
// Decoding messages from a framed file:
//
//	f, _ := os.Open("trace.dlt")
//	r := dltcore.NewSyncReader(f, true)
//	for {
//	    parsed, err := dltcore.ReadMessage(r, nil)
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(parsed.Message)
//	}
//
// This package provides convenient top-level wrappers around the
// message, reader, stats, fibex, and dlf packages. For advanced
// usage and fine-grained control, use those packages directly.
package dltcore
