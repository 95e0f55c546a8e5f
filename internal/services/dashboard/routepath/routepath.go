// Package routepath stores canonical HTTP paths for the dashboard and
// resolves a page path to the view it renders.
package routepath

const (
	Root         = "/"
	About        = "/about"
	Health       = "/up"
	Metrics      = "/metrics"
	StaticPrefix = "/static/"
	AssetsPrefix = "/assets/"
	Update       = "/_dash/update"
	UpdateJSON   = "/_dash/update.json"
)

// View names the page body a path renders.
type View string

const (
	ViewOverview View = "overview"
	ViewNotFound View = "not-found"
)

// Resolve maps a page path to its view. Only the root path renders the
// overview; every other path, including About and the empty string,
// renders the not-found view.
func Resolve(path string) View {
	if path == Root {
		return ViewOverview
	}
	return ViewNotFound
}
