package router

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouteRegistrar mounts a set of routes on the versioned API group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router mounts resource groups under /api/<version> behind shared middleware
type Router struct {
	engine     *gin.Engine
	apiVersion string
	logger     *zap.Logger
	middleware []gin.HandlerFunc
	groups     []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// WithLogger logs each mounted group at debug level
func WithLogger(logger *zap.Logger) RouterOption {
	return func(r *Router) {
		r.logger = logger
	}
}

// NewRouter creates a Router for engine, defaulting to v1
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{engine: engine, apiVersion: "v1", logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Use adds middleware ahead of every API route
func (r *Router) Use(middleware ...gin.HandlerFunc) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Register queues groups for Setup
func (r *Router) Register(groups ...RouteRegistrar) *Router {
	r.groups = append(r.groups, groups...)
	return r
}

// Setup mounts every queued group and returns the API group
func (r *Router) Setup() *gin.RouterGroup {
	api := r.engine.Group("/api/"+r.apiVersion, r.middleware...)
	for _, g := range r.groups {
		g.RegisterRoutes(api)
		if dg, ok := g.(*DomainGroup); ok {
			r.logger.Debug("Mounted route group",
				zap.String("group", dg.name),
				zap.String("prefix", path.Join(api.BasePath(), dg.prefix)),
				zap.Int("routes", len(dg.routes)),
			)
		}
	}
	return api
}

// DomainGroup collects the routes of one resource under a common prefix
type DomainGroup struct {
	name       string
	prefix     string
	middleware []gin.HandlerFunc
	routes     []Route
}

// Route is one method and path registered by a DomainGroup
type Route struct {
	Method   string
	Path     string
	handlers []gin.HandlerFunc
}

// NewDomainGroup creates a group for one resource
func NewDomainGroup(name, prefix string) *DomainGroup {
	return &DomainGroup{name: name, prefix: prefix}
}

// Use adds middleware that runs only for this group
func (dg *DomainGroup) Use(middleware ...gin.HandlerFunc) *DomainGroup {
	dg.middleware = append(dg.middleware, middleware...)
	return dg
}

func (dg *DomainGroup) GET(relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.add(http.MethodGet, relativePath, handlers)
}

func (dg *DomainGroup) POST(relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.add(http.MethodPost, relativePath, handlers)
}

func (dg *DomainGroup) PUT(relativePath string, handlers ...gin.HandlerFunc) *DomainGroup {
	return dg.add(http.MethodPut, relativePath, handlers)
}

func (dg *DomainGroup) add(method, relativePath string, handlers []gin.HandlerFunc) *DomainGroup {
	dg.routes = append(dg.routes, Route{Method: method, Path: relativePath, handlers: handlers})
	return dg
}

// Routes lists the method and path of every route, relative to the group prefix
func (dg *DomainGroup) Routes() []Route {
	out := make([]Route, len(dg.routes))
	for i, rt := range dg.routes {
		out[i] = Route{Method: rt.Method, Path: rt.Path}
	}
	return out
}

// RegisterRoutes implements RouteRegistrar
func (dg *DomainGroup) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group(dg.prefix, dg.middleware...)
	for _, rt := range dg.routes {
		group.Handle(rt.Method, rt.Path, rt.handlers...)
	}
}
