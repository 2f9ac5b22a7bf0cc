// Package buffer implements the document model for reedit: an ordered,
// never-empty sequence of lines plus the cursor that edits them.
//
// Coordinates are 0-based (Row, Col). Col counts grapheme clusters and may
// equal the line length, meaning "after the last character".
package buffer
