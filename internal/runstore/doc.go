// Package runstore persists run accounting in SQLite.
//
// Each scrape run writes one row of counts plus one row per failed attempt.
// Fetched content is never stored, so the ledger is accounting, not a cache;
// re-running a scrape always refetches. Schema changes bump the version in
// schema.sql; a mismatched database must be deleted to adopt the new schema.
package runstore
