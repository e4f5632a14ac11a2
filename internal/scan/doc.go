// Package scan is the static mirror of the runtime accessor classifier.
//
// It loads Go packages with golang.org/x/tools/go/packages, discovers the
// properties of each exported struct type (fields, plus X()/SetX() accessor
// method pairs), classifies every property's value kind the same way the
// kindof package does at runtime, and reports the accessor strategy each
// property would bind to, together with findings such as setters that
// receive the owner by value and would lose writes.
//
// Static (package-level) members are out of the audit's scope; it reports
// instance properties only.
package scan
