// Package database manages the GORM connection backing the durable cache
// tier.
//
// The default driver is sqlite (a single local file, no external service);
// mysql is supported for shared deployments where several instances should
// see the same durable cache. The inspector exposes table schemas for the
// cache inspect command.
package database
