package ingest

import "errors"

// ErrMissingText indicates no post text was supplied and none could be
// recovered from the tweet URL. This is fatal for the ingestion request.
var ErrMissingText = errors.New("tweet text is required and could not be fetched")
