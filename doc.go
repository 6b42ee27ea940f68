// Package resourceid derives valid resource names, such as database and
// instance identifiers for integration tests, from arbitrary base strings.
//
// Generated names satisfy the target system's naming rules: a restricted
// character set, a leading lowercase letter, no trailing separator and a
// maximum length. Names that would be too long are shortened and, where the
// family allows it, suffixed with a random component so they stay unique.
//
//	dbID, _ := resourceid.GenerateDatabaseID("Orders.Test")    // orders_test
//	instID, _ := resourceid.GenerateInstanceID("orders")       // orders-20240101-120000-000123
//	shortID, _ := resourceid.GenerateNewID("long-test-id", 11) // lo-Ab3dE9xQ
//
// A Service carries a Config and injectable random, clock and registry
// collaborators; the package-level functions use the defaults.
package resourceid
