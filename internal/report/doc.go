// Package report renders the resolved plugin configuration: a JSON hand-off
// document for the scanning engine and a table for verbose runs.
package report
