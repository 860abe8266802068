// Package corpus defines the text items the extractor consumes and the
// readers that load them from JSONL files.
package corpus

// Origin categorizes where a text item came from in the source data.
// Values are carried verbatim into every mention for provenance.
type Origin string

const (
	OriginSubmissionTitle    Origin = "submission_title"
	OriginSubmissionSelftext Origin = "submission_selftext"
	OriginComment            Origin = "comment"
	OriginOther              Origin = "other"
)

// TextItem is one unit of source text with the provenance needed to
// trace a mention back to its source record. Immutable once constructed.
type TextItem struct {
	Text   string
	Origin Origin

	// OriginalIndex is an opaque identifier from the ingestion pipeline
	// (a row index, a reddit fullname, ...). Never interpreted here.
	OriginalIndex string
}
