// Package dataprocessing implements the outage schedule pipeline core:
// charset decoding, HTML table extraction, and the business-rule
// transformation (filter, classify, sort, renumber) that produces
// report-ready records.
//
// Every function in this package is a pure, synchronous transform over its
// inputs. Domain "no data" outcomes are reported as domain.ErrNoData and
// domain.ErrNoAllowedSites rather than faults.
package dataprocessing
