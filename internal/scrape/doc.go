// Package scrape implements the concurrent retrieval engine: matching dataset
// records against requested languages, fetching eligible tracks under expiry
// and format constraints, and fanning the work across a bounded worker pool.
//
// Every (record, language) pair becomes exactly one WorkUnit and every
// WorkUnit yields exactly one Result, whatever fails along the way. Failures
// are values on the Result, never errors; nothing a single unit does can
// abort the run.
package scrape
