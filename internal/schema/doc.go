// Package schema interprets rows of text fields against declarative field
// descriptors.
//
// A Schema[T] lists, per source column, the expected header text, the
// semantic kind, and a typed setter that writes the parsed value into a
// destination *T. Interpret walks the list in order and stops at the first
// failure; CheckHeader verifies a file's first line against the same list.
//
// Foreign-key kinds (conference, team, game) resolve the column's source code
// through a Resolver and write the resulting content identifier. Shared
// adapts a single idindex.Index; the ingestion loader keeps one per file.
//
// Game codes are 16+ character strings laid out as
// [team1:4][team2:4][yyyy:4][mmdd:4]. PackGameCode folds one into a 32-bit
// code that is identical whichever team is written first.
package schema
