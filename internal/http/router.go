package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/corkboardhq/corkd/internal/service"
	"github.com/corkboardhq/corkd/internal/store"
	"github.com/corkboardhq/corkd/pkg/httpx"
	"github.com/corkboardhq/corkd/pkg/slogx"

	_ "github.com/corkboardhq/corkd/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store        store.Store
	AuthService  *service.AuthService
	BoardService *service.BoardService
	ItemService  *service.ItemService
	RolesService *service.RolesService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	// Every request passes the gatekeeper; its allowlist lets the
	// auth, health and swagger routes through without a token.
	r.middlewares = append(r.middlewares, Gatekeeper(r.AuthService))

	r.registerAuth()
	r.registerBoards()
	r.registerItems()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Corkd Board Tracking API
//	@version		0.1.0
//	@description	Board and item tracking backend with local and GitHub-federated accounts.
//	@description
//	@description				Access tokens are HS256 JWTs issued at login and passed as a bearer header.
//
//	@contact.name				CorkboardHQ Team
//	@contact.url				https://github.com/corkboardhq/corkd
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{Auth: r.AuthService}

	r.Mux.HandleFunc("POST /auth/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /auth/login", h.HandleLogin)
	r.Mux.HandleFunc("POST /auth/github", h.HandleGitHubLogin)
}

func (r *Router) registerBoards() {
	h := &BoardHandler{
		Auth:   r.AuthService,
		Boards: r.BoardService,
		Roles:  r.RolesService,
	}

	r.Mux.HandleFunc("POST /boards", h.HandleCreateBoard)
	r.Mux.HandleFunc("GET /boards", h.HandleListBoards)
	r.Mux.HandleFunc("GET /boards/{id}", h.HandleGetBoard)
	r.Mux.HandleFunc("DELETE /boards/{id}", h.HandleDeleteBoard)

	r.Mux.HandleFunc("POST /boards/{id}/statuses", h.HandleAddStatus)
	r.Mux.HandleFunc("GET /boards/{id}/statuses", h.HandleListStatuses)
	r.Mux.HandleFunc("DELETE /boards/{id}/statuses/{name}", h.HandleRemoveStatus)

	r.Mux.HandleFunc("POST /boards/{id}/types", h.HandleAddType)
	r.Mux.HandleFunc("GET /boards/{id}/types", h.HandleListTypes)
	r.Mux.HandleFunc("DELETE /boards/{id}/types/{typeID}", h.HandleRemoveType)

	r.Mux.HandleFunc("POST /boards/{id}/roles", h.HandleAssignRole)
	r.Mux.HandleFunc("GET /boards/{id}/roles", h.HandleListRoles)
	r.Mux.HandleFunc("DELETE /boards/{id}/roles/{userID}/{role}", h.HandleRemoveRole)
}

func (r *Router) registerItems() {
	h := &ItemHandler{
		Items: r.ItemService,
		Roles: r.RolesService,
	}

	r.Mux.HandleFunc("POST /boards/{id}/items", h.HandleCreateItem)
	r.Mux.HandleFunc("GET /boards/{id}/items", h.HandleFilterItems)

	r.Mux.HandleFunc("GET /items/{id}", h.HandleGetItem)
	r.Mux.HandleFunc("PUT /items/{id}/status", h.HandleSetStatus)
	r.Mux.HandleFunc("PUT /items/{id}/type", h.HandleSetType)
	r.Mux.HandleFunc("PUT /items/{id}/assignee", h.HandleSetAssignee)
	r.Mux.HandleFunc("DELETE /items/{id}", h.HandleDeleteItem)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
