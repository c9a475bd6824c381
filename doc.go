// # csvbind: Streaming, Statically-Typed CSV Binding for Go
//
// csvbind decodes a CSV byte stream and calls a handler with the typed fields of
// every accepted row. The row schema is declared with typed columns, so the handler
// receives ints, floats, strings, decimals or any custom type directly, without
// reflection.
//
//	totals := map[string]int{}
//	p := csvbind.New2(csvbind.Int(), csvbind.String(), func(count int, name string) {
//		totals[name] += count
//	})
//	if err := p.ParseFile("counts.csv"); err != nil {
//		log.Fatal(p.ErrorString())
//	}
//
// # Features
//
// - Push-based incremental tokenizer with custom field and quote separators; input may
// arrive in chunks of any size (`Parse`), from an `io.Reader` (`ParseReader`) or from a
// memory-mapped file (`ParseFile`, with transparent gzip, zstd, lz4 and snappy support).
// - Typed columns for the built-in scalar types, `Skip` for columns of no interest and
// `Custom` for anything else; the `columns` package adds decimals, UUIDs, dates and
// pgx types.
// - Row filters evaluated field by field before conversion, comment-prefix filtering and
// one-shot header skipping.
// - Per-field conversion-error recovery through an `ErrorPolicy`: drop the row (the
// default, logged with zap), keep the zero value, or abort the parse.
// - Sticky status reporting: the first terminal error wins and is kept for the life of
// the parser; rows emitted before it are not rolled back.
// - Optional Prometheus metrics.
//
// # Empty and short fields
//
// An empty field binds the zero value of its column type and never reaches the
// conversion function. Columns missing from a short record bind zero values too.
package csvbind
