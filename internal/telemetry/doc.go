// Package telemetry collects Prometheus metrics for a simulate.Run
// invocation: committed actions, rewards, and planning wall-clock, so a
// long CLI run can be scraped or snapshotted without parsing its logs.
package telemetry
