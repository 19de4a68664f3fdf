// Package exporter renders report records into the formatted daily outage
// plan workbook: merged title row, two-row merged header block, bordered
// data rows with live-work highlighting, and fixed column widths. The
// workbook is produced in memory; persisting it is the caller's job.
package exporter
