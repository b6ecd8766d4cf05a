// Package memory implements the record store interfaces over plain
// in-memory slices. It backs the payroll engine and policy tests, which
// must run against fixtures without a database.
package memory
