// Package courier provides the Courier aggregate. A courier claims tasks,
// runs at most one multi-stop route at a time, and holds a running balance
// that only the ledger operations may change.
package courier
