// Package observability provides event logging, metrics calculation, and
// alerting for tdo. It uses structured JSON Lines (JSONL) for event
// persistence and derives metrics on-demand from the event log, while alert
// conditions are checked against the live task list as well.
package observability
