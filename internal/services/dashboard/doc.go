// Package dashboard serves the COVID-19 Australia dashboard over HTTP.
//
// The overview page renders every binding output inline. Control changes
// are sent to the update endpoint, which dispatches the binding table and
// answers with out-of-band fragments for the recomputed slots only.
package dashboard
