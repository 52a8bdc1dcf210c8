package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router groups route registration under a versioned API prefix. Public
// registrars are mounted directly under the prefix; protected registrars
// sit behind the configured middleware chain (auth).
type Router struct {
	engine     *gin.Engine
	apiVersion string
	protected  []gin.HandlerFunc
	public     []RouteRegistrar
	guarded    []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithProtection sets the middleware chain applied to protected routes
func WithProtection(middleware ...gin.HandlerFunc) RouterOption {
	return func(r *Router) {
		r.protected = middleware
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterPublic adds a registrar mounted without authentication
func (r *Router) RegisterPublic(registrars ...RouteRegistrar) *Router {
	r.public = append(r.public, registrars...)
	return r
}

// Register adds a registrar mounted behind the protection middleware
func (r *Router) Register(registrars ...RouteRegistrar) *Router {
	r.guarded = append(r.guarded, registrars...)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	for _, registrar := range r.public {
		registrar.RegisterRoutes(api)
	}

	authenticated := api.Group("")
	if len(r.protected) > 0 {
		authenticated.Use(r.protected...)
	}
	for _, registrar := range r.guarded {
		registrar.RegisterRoutes(authenticated)
	}
}
