// Package record models one entry of the video metadata dataset.
//
// A Record keeps its raw decoded JSON tree alongside the resolved identity so
// output modes can re-emit the original structure untouched. Media
// descriptors (subtitle or caption tracks) are extracted on demand from the
// kind-specific nested path; the two kinds also carry different
// language-matching policies, which live on the Kind type so every caller
// applies the same rules.
package record
