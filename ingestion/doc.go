// Package ingestion loads record collections from files.
//
// The Loader decodes JSON, YAML and CSV files concurrently using a worker
// pool, then assembles the records in argument order:
//   - Records missing a required field are skipped and logged
//   - Exact duplicates are dropped when deduplication is enabled
//
// Decoding errors fail the whole load. Validation failures do not.
package ingestion
